package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	EnhanceContent  string
	SuggestKeywords string
	SuggestContent  string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	EnhanceContent  string
	SuggestKeywords string
	SuggestContent  string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	EnhanceContent: `You are an expert resume writer with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills or experiences
- Every piece of information must be directly traceable to the source material
- Replace weak phrasing with strong action verbs
- Keep content ATS-friendly (plain structure, clear section headers, relevant keywords)`,

	SuggestKeywords: `You are an expert recruiter and ATS specialist. Your role is to read job descriptions and extract the skills, qualifications, and requirements that applicant tracking systems and hiring managers actually screen for. Prefer concrete skills and technologies over generic soft phrases.`,

	SuggestContent: `You are an expert resume writer helping a candidate draft honest, achievement-oriented resume content. Your output must be:

- Concise and professional
- Results-oriented, with concrete metrics where they are plausible
- Free of fabricated employers, titles, or credentials`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	EnhanceContent: `Improve the following resume content for a %s position.
Make it more impactful, professional, and results-oriented.
Replace weak phrases with strong action verbs, add metrics where sensible, and ensure it's ATS-friendly.
Do not invent false information. Keep the same general content but improve the phrasing.
Also provide a brief explanation of the key improvements you made.

CONTENT TO IMPROVE:
%s`,

	SuggestKeywords: `Extract the most important skills, qualifications, and requirements from this job description.
Return at most 20 keywords, most relevant first.

JOB DESCRIPTION:
%s`,

	SuggestContent: `Generate resume content for a %s position%s%s.
Provide:
- A list of 10-15 relevant professional skills (technical and soft)
- A concise, powerful professional summary of 2-3 sentences highlighting key strengths
- %d concise, achievement-oriented experience bullet points with concrete metrics where possible`,
}
