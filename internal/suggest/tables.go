package suggest

// Role-keyed fallback content used when the AI provider is unavailable.
// roleKeys fixes the matching order so role resolution stays deterministic.
var roleKeys = []string{
	"software developer",
	"data scientist",
	"product manager",
	"designer",
	"marketing",
}

const defaultRole = "software developer"

var skillSuggestions = map[string][]string{
	"software developer": {
		"Python", "JavaScript", "Java", "C#", "C++", "TypeScript",
		"React", "Angular", "Vue.js", "Node.js", "Django", "Flask",
		"SQL", "MongoDB", "PostgreSQL", "AWS", "Docker", "Kubernetes",
		"CI/CD", "Git", "Agile Methodologies", "Problem Solving",
	},
	"data scientist": {
		"Python", "R", "SQL", "Machine Learning", "Deep Learning", "TensorFlow",
		"PyTorch", "Scikit-learn", "Pandas", "NumPy", "Data Visualization",
		"Statistical Analysis", "Big Data", "Hadoop", "Spark", "NLP",
		"A/B Testing", "Data Mining", "Feature Engineering",
	},
	"product manager": {
		"Product Strategy", "Market Research", "User Stories", "Agile", "Scrum",
		"Roadmapping", "Competitive Analysis", "A/B Testing", "User Experience",
		"Product Lifecycle Management", "JIRA", "Confluence", "SQL", "Analytics",
		"Stakeholder Management", "Presentation Skills", "Prioritization",
	},
	"designer": {
		"UI/UX Design", "Figma", "Adobe Creative Suite", "Sketch", "InVision",
		"Wireframing", "Prototyping", "Typography", "Color Theory", "Design Systems",
		"User Research", "Usability Testing", "Responsive Design", "Accessibility",
	},
	"marketing": {
		"Digital Marketing", "Content Marketing", "SEO", "SEM", "Social Media Marketing",
		"Email Marketing", "Google Analytics", "A/B Testing", "Market Research",
		"Campaign Management", "Brand Strategy", "Adobe Analytics", "HubSpot", "CRM",
	},
}

var summarySuggestions = map[string][]string{
	"software developer": {
		"Experienced software developer with a proven track record of building scalable, efficient applications.",
		"Results-driven software engineer with expertise in designing and implementing robust solutions to complex problems.",
		"Detail-oriented developer with strong analytical skills and a passion for clean, maintainable code.",
	},
	"data scientist": {
		"Data scientist with expertise in applying statistical methods and machine learning to extract actionable insights.",
		"Analytical professional skilled in transforming complex datasets into clear business recommendations.",
		"Results-oriented data scientist with experience in building predictive models that drive business decisions.",
	},
	"product manager": {
		"Strategic product manager with a proven ability to identify market opportunities and deliver successful products.",
		"User-focused product manager experienced in translating customer needs into product features and roadmaps.",
		"Results-driven product leader with expertise in managing the full product lifecycle from conception to launch.",
	},
	"designer": {
		"Creative designer with a keen eye for aesthetics and a user-centered approach to design challenges.",
		"Innovative design professional with expertise in creating intuitive, engaging user experiences.",
		"Detail-oriented designer skilled in balancing creativity with functional requirements to deliver impactful designs.",
	},
	"marketing": {
		"Strategic marketing professional with a track record of developing campaigns that increase brand awareness and drive conversion.",
		"Data-driven marketer experienced in leveraging analytics to optimize marketing strategies and ROI.",
		"Creative marketing specialist with expertise in crafting compelling narratives that resonate with target audiences.",
	},
}

// experienceTemplates carry {technology}, {number}, {percentage}, {metric}
// placeholders filled in at suggestion time.
var experienceTemplates = map[string][]string{
	"software developer": {
		"Developed and maintained {technology} applications serving {number} users",
		"Implemented CI/CD pipeline resulting in {percentage}% reduction in deployment time",
		"Refactored legacy code base improving performance by {percentage}%",
		"Collaborated with cross-functional teams to deliver features on time and within scope",
		"Designed and implemented RESTful APIs for third-party integrations",
		"Led code reviews and mentored junior developers in best practices",
	},
	"data scientist": {
		"Built predictive models that improved {metric} by {percentage}%",
		"Analyzed large datasets to identify patterns and trends that informed business strategy",
		"Developed automated reporting dashboards used by executive leadership",
		"Implemented A/B testing framework that optimized conversion rates",
		"Created machine learning algorithms that enhanced product recommendations",
		"Collaborated with stakeholders to translate business questions into data analysis projects",
	},
	"product manager": {
		"Led product strategy resulting in {percentage}% increase in user engagement",
		"Managed product roadmap and prioritized features based on user feedback and business goals",
		"Collaborated with engineering teams to deliver products on schedule and within budget",
		"Conducted market research to identify customer needs and competitive positioning",
		"Defined and tracked KPIs to measure product success and inform iterations",
		"Presented product vision and strategy to executive leadership",
	},
}

var templateTechnologies = []string{"web", "mobile", "cloud", "desktop"}
var templateMetrics = []string{"accuracy", "efficiency", "sales", "retention"}
