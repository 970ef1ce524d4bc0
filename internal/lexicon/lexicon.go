// Package lexicon holds the static word tables driving spelling correction,
// text enhancement, and ATS scoring. All tables are process-wide read-only
// configuration; nothing here is mutated after init.
package lexicon

// Misspelling is one known misspelling and its canonical replacement.
type Misspelling struct {
	Wrong string
	Right string
}

// Misspellings lists common resume misspellings in a fixed order so that
// correction lists are deterministic across runs.
var Misspellings = []Misspelling{
	{"accomodate", "accommodate"},
	{"acheive", "achieve"},
	{"accross", "across"},
	{"agressive", "aggressive"},
	{"alot", "a lot"},
	{"arguement", "argument"},
	{"assesment", "assessment"},
	{"basicly", "basically"},
	{"begining", "beginning"},
	{"beleive", "believe"},
	{"calender", "calendar"},
	{"catagory", "category"},
	{"commited", "committed"},
	{"completly", "completely"},
	{"concious", "conscious"},
	{"definately", "definitely"},
	{"dissapoint", "disappoint"},
	{"embarass", "embarrass"},
	{"enviroment", "environment"},
	{"excelent", "excellent"},
	{"explaination", "explanation"},
	{"familar", "familiar"},
	{"finaly", "finally"},
	{"foriegn", "foreign"},
	{"gaurd", "guard"},
	{"goverment", "government"},
	{"grammer", "grammar"},
	{"happend", "happened"},
	{"harrassment", "harassment"},
	{"immediatly", "immediately"},
	{"independant", "independent"},
	{"liason", "liaison"},
	{"maintainance", "maintenance"},
	{"millenium", "millennium"},
	{"neccessary", "necessary"},
	{"noticable", "noticeable"},
	{"occassion", "occasion"},
	{"occured", "occurred"},
	{"persistant", "persistent"},
	{"personel", "personnel"},
	{"plannning", "planning"},
	{"posession", "possession"},
	{"prefered", "preferred"},
	{"recieve", "receive"},
	{"reccomend", "recommend"},
	{"refered", "referred"},
	{"referance", "reference"},
	{"relevent", "relevant"},
	{"seperate", "separate"},
	{"succesful", "successful"},
	{"supercede", "supersede"},
	{"tommorrow", "tomorrow"},
	{"untill", "until"},
}

// WeakWords are filler words removed outright from resume text.
var WeakWords = []string{
	"very", "really", "just", "quite", "basically", "actually", "simply", "nice",
	"good", "bad", "great", "like", "thing", "stuff", "etc", "a lot", "got", "kind of",
	"sort of", "type of", "feel", "think", "believe", "hope", "pretty", "guess", "maybe",
	"perhaps", "seems", "appeared to", "tried to",
}

// Cliches are overused resume phrases flagged for replacement.
var Cliches = []string{
	"team player",
	"detail-oriented",
	"self-starter",
	"hard worker",
	"results-driven",
	"go-getter",
	"think outside the box",
	"synergy",
	"proactive",
	"go-to person",
	"dynamic",
	"solution-driven",
	"multitasker",
	"excellent communication skills",
	"track record of success",
	"bottom line",
	"value-added",
	"win-win",
	"cutting edge",
	"best of breed",
	"results-oriented",
	"fast-paced environment",
	"synergize",
	"hit the ground running",
}

// VerbCategory tags a group of action verbs by the kind of work they describe.
type VerbCategory string

const (
	CategoryManagement    VerbCategory = "management"
	CategoryCommunication VerbCategory = "communication"
	CategoryResearch      VerbCategory = "research"
	CategoryTechnical     VerbCategory = "technical"
	CategoryTeaching      VerbCategory = "teaching"
	CategoryCreative      VerbCategory = "creative"
	CategoryFinancial     VerbCategory = "financial"
)

// VerbCategories lists the categories in a fixed order for deterministic
// scoring ties and iteration.
var VerbCategories = []VerbCategory{
	CategoryManagement,
	CategoryCommunication,
	CategoryResearch,
	CategoryTechnical,
	CategoryTeaching,
	CategoryCreative,
	CategoryFinancial,
}

// ActionVerbs maps each category to its recommended bullet-opening verbs.
var ActionVerbs = map[VerbCategory][]string{
	CategoryManagement: {
		"Administered", "Analyzed", "Assigned", "Attained", "Chaired",
		"Consolidated", "Contracted", "Coordinated", "Delegated", "Developed",
		"Directed", "Evaluated", "Executed", "Improved", "Increased",
		"Organized", "Oversaw", "Planned", "Prioritized", "Produced",
		"Recommended", "Reviewed", "Scheduled", "Strengthened", "Supervised",
	},
	CategoryCommunication: {
		"Addressed", "Arbitrated", "Arranged", "Authored", "Collaborated",
		"Convinced", "Corresponded", "Developed", "Directed", "Drafted",
		"Edited", "Enlisted", "Formulated", "Influenced", "Interpreted",
		"Lectured", "Mediated", "Moderated", "Negotiated", "Persuaded",
		"Promoted", "Publicized", "Reconciled", "Recruited", "Translated",
	},
	CategoryResearch: {
		"Analyzed", "Clarified", "Collected", "Compared", "Conducted",
		"Critiqued", "Detected", "Determined", "Diagnosed", "Evaluated",
		"Examined", "Extracted", "Identified", "Inspected", "Interpreted",
		"Interviewed", "Investigated", "Organized", "Reviewed", "Summarized",
		"Surveyed", "Systematized", "Tested", "Validated", "Verified",
	},
	CategoryTechnical: {
		"Assembled", "Built", "Calculated", "Computed", "Designed",
		"Devised", "Engineered", "Fabricated", "Maintained", "Operated",
		"Optimized", "Overhauled", "Programmed", "Redesigned", "Reduced",
		"Remodeled", "Repaired", "Solved", "Standardized", "Upgraded",
	},
	CategoryTeaching: {
		"Adapted", "Advised", "Clarified", "Coached", "Communicated",
		"Coordinated", "Developed", "Enabled", "Encouraged", "Evaluated",
		"Explained", "Facilitated", "Guided", "Informed", "Instructed",
		"Persuaded", "Set goals", "Stimulated", "Taught", "Trained",
	},
	CategoryCreative: {
		"Acted", "Composed", "Conceived", "Conceptualized", "Created",
		"Customized", "Designed", "Developed", "Directed", "Established",
		"Fashioned", "Founded", "Illustrated", "Initiated", "Instituted",
		"Integrated", "Introduced", "Invented", "Originated", "Performed",
		"Planned", "Revitalized", "Shaped", "Visualized",
	},
	CategoryFinancial: {
		"Administered", "Allocated", "Analyzed", "Appraised", "Audited",
		"Balanced", "Budgeted", "Calculated", "Computed", "Developed",
		"Forecasted", "Managed", "Marketed", "Planned", "Projected",
		"Researched", "Reduced", "Tracked", "Quantified", "Verified",
	},
}

// SectionHeaders are the terms the ATS scorer looks for as whole words to
// judge whether a resume has recognizable sections.
var SectionHeaders = []string{
	"experience", "education", "skills", "summary", "objective", "work", "contact",
}

// StopWords are dropped during heuristic keyword extraction. The set includes
// generic English stop words plus job-posting boilerplate.
var StopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "in": true, "on": true, "at": true, "by": true, "for": true,
	"with": true, "about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true, "above": true,
	"below": true, "to": true, "from": true, "up": true, "down": true, "of": true,
	"off": true, "over": true, "under": true, "again": true, "further": true,
	"then": true, "once": true, "here": true, "there": true, "when": true,
	"where": true, "why": true, "how": true, "all": true, "any": true,
	"both": true, "each": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "no": true, "nor": true,
	"not": true, "only": true, "own": true, "same": true, "so": true,
	"than": true, "too": true, "very": true, "s": true, "t": true, "can": true,
	"will": true, "just": true, "don": true, "should": true, "now": true,
	"you": true, "we": true, "our": true, "company": true, "position": true,
	"job": true, "role": true, "candidate": true, "applicant": true,
	"ideal": true, "looking": true, "must": true, "required": true,
	"preferred": true, "responsibilities": true, "qualifications": true,
	"requirements": true, "ability": true, "experience": true, "work": true,
	"working": true, "team": true, "strong": true, "excellent": true,
	"include": true, "including": true,
}
