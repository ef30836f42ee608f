package catalog

// defaultTechnicalSkills is the built-in technical skill vocabulary used when
// no external vocabulary file is configured.
var defaultTechnicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "kotlin", "swift",
	"php", "ruby", "scala", "perl", "r", "matlab", "sql", "html", "css", "xml", "json",

	// Frameworks and libraries
	"react", "angular", "vue", "django", "flask", "spring", "node.js", "express", "fastapi",
	"tensorflow", "pytorch", "keras", "pandas", "numpy", "scikit-learn", "bootstrap", "jquery",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite", "cassandra", "elasticsearch",

	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab",
	"ci/cd", "terraform", "ansible", "linux", "bash", "shell scripting",

	// Tools and practices
	"jira", "confluence", "agile", "scrum", "kanban", "rest api", "graphql", "microservices",
	"machine learning", "deep learning", "ai", "data science", "big data", "hadoop", "spark",

	// Web
	"html5", "css3", "sass", "less", "webpack", "npm", "yarn", "redux", "vuex",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin",

	// General engineering
	"oop", "design patterns", "tdd", "unit testing", "integration testing", "api development",
	"software architecture", "system design", "algorithms", "data structures",
}

// defaultSoftSkills is the built-in soft skill vocabulary.
var defaultSoftSkills = []string{
	"communication", "leadership", "teamwork", "problem solving", "time management",
	"project management", "critical thinking", "adaptability", "creativity", "collaboration",
}

// DefaultVocabulary returns the built-in skill vocabulary (technical plus
// soft skills), deduplicated case-insensitively.
func DefaultVocabulary() *Vocabulary {
	terms := make([]string, 0, len(defaultTechnicalSkills)+len(defaultSoftSkills))
	terms = append(terms, defaultTechnicalSkills...)
	terms = append(terms, defaultSoftSkills...)
	return NewVocabulary(terms)
}
