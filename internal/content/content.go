// Package content holds the copy rendered by the page templates.
package content

import "strings"

// Link is an outbound profile link.
type Link struct {
	Label string
	Href  string
}

// External reports whether the link leaves the site.
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http://") || strings.HasPrefix(l.Href, "https://")
}

type Project struct {
	Title            string
	ShortDescription string
	Description      string
	Technologies     []string
	DemoURL          string
}

type Experience struct {
	Company      string
	Role         string
	Location     string
	Period       string
	Description  []string
	Technologies []string
}

type Skill struct {
	Title        string
	Description  string
	Technologies []string
}

type Profile struct {
	Name     string
	Headline string
	Tagline  string
	About    string
	Email    string
}

// Site is everything the templates read besides per-request values.
type Site struct {
	Profile     Profile
	Links       []Link
	Projects    []Project
	Experiences []Experience
	Skills      []Skill
	Interests   []string
}

// Default is the published site copy.
var Default = Site{
	Profile: Profile{
		Name:     "Kennedy Gregg",
		Headline: "Software Engineer.",
		Tagline:  "I craft immersive web interfaces and interactive 3D experiences using Three.js and modern creative tech.",
		About: "Hey, I'm Kennedy Gregg a developer who loves turning ideas into code. Whether it's AI, web apps, " +
			"or game projects, I'm always building something new that challenges me to think bigger.",
		Email: "contact@kennedygregg.com",
	},
	Links: []Link{
		{Label: "GitHub", Href: "https://github.com/THEFLASH10002"},
		{Label: "LinkedIn", Href: "https://www.linkedin.com/in/kennedy-gregg-52543128a/"},
		{Label: "Resume", Href: "/resume"},
	},
	Projects: []Project{
		{
			Title:            "Eido",
			ShortDescription: "Full-stack AI learning platform with interactive 3D knowledge graph",
			Description: "Built and deployed a full-stack AI learning platform with JWT authentication, pgvector embeddings, " +
				"and OpenAI integration. Created an interactive 3D knowledge graph using Three.js for visualizing learning connections.",
			Technologies: []string{"FastAPI", "Next.js", "Supabase", "OpenAI", "Three.js", "PostgreSQL"},
			DemoURL:      "https://www.loom.com/share/99480c7998724b5384d7e94962d6e119",
		},
		{
			Title:            "VR AI Assistant",
			ShortDescription: "NVIDIA hackathon VR environment that dynamically changes through voice interaction",
			Description: "Built for an NVIDIA 2-hour hackathon using Nemotron and NIM in a VR environment. The immersive " +
				"experience dynamically changes when speaking to an AI bot, featuring real-time voice interaction and " +
				"responsive environment manipulation.",
			Technologies: []string{"Unity", "C#", "VR/XR", "Flask", "OpenAI Whisper", "NVIDIA Nemotron", "NIM", "ElevenLabs"},
		},
		{
			Title:            "Machine Learning Project",
			ShortDescription: "Learning AI for obstacle avoidance and 2v2 soccer matches",
			Description: "Developed a learning AI using Python, C++, C#, and ML-Agents to complete tasks like obstacle " +
				"avoidance and 2v2 soccer matches against AI opponents.",
			Technologies: []string{"Python", "C++", "C#", "ML-Agents"},
		},
	},
	Experiences: []Experience{
		{
			Company:  "Booz Allen Hamilton",
			Role:     "Incoming Software Developer Intern",
			Location: "Atlanta, Georgia, United States",
			Period:   "Nov 2025 - Present",
			Description: []string{
				"Software development internship focusing on building innovative solutions",
				"Collaborating with teams to deliver high-quality software products",
			},
		},
		{
			Company:  "Howard University",
			Role:     "Undergraduate Research - NAVY & AAVE",
			Location: "Washington, D.C.",
			Period:   "Sep 2025 - Current",
			Description: []string{
				"Designing LLM-based systems that generate tactical decision recommendations for naval officers",
				"Conducting automated transcription research on African American Vernacular English",
			},
			Technologies: []string{"Python", "Machine Learning", "LLM", "Speech Recognition"},
		},
		{
			Company:  "The Home Depot",
			Role:     "AI Workforce Management Extern",
			Location: "Acworth, GA",
			Period:   "Summer 2025",
			Description: []string{
				"Proposed an AI-powered scheduling tool that optimized workforce allocation",
				"Presented how predictive analytics could improve store operations",
			},
			Technologies: []string{"Python", "AI", "Machine Learning", "Predictive Analytics"},
		},
		{
			Company:  "Code Ninjas",
			Role:     "Code Sensei",
			Location: "Acworth, GA, Alexandria VA",
			Period:   "August 2022 - Current",
			Description: []string{
				"Taught Java and C++ to students from 2nd to 9th grade",
				"Created and led the 3D development for the first Unity camp using Playmaker",
			},
			Technologies: []string{"Java", "C++", "Unity", "Playmaker"},
		},
	},
	Skills: []Skill{
		{
			Title:        "Languages",
			Description:  "Frontend and backend development, with Python for AI/ML and web work.",
			Technologies: []string{"Python", "C++", "C#", "JavaScript", "SQL", "HTML", "CSS"},
		},
		{
			Title:        "Frameworks & Libraries",
			Description:  "Web applications and interactive 3D visualizations.",
			Technologies: []string{"Flask", "Django", "FastAPI", "Next.js", "OpenCV", "Media Pipe", "Three.js"},
		},
		{
			Title:        "AI & Machine Learning",
			Description:  "LLM systems, speech recognition and machine learning agents.",
			Technologies: []string{"OpenAI", "Gemini AI", "Machine Learning"},
		},
		{
			Title:        "Databases & Tools",
			Description:  "Database design plus the tooling to ship it.",
			Technologies: []string{"PostgreSQL", "SQLite", "Supabase", "Git", "Raspberry Pi", "Vercel"},
		},
	},
	Interests: []string{"Game development", "Creative coding", "Teaching"},
}
