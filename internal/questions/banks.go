package questions

import (
	"fmt"

	"github.com/spigell/interview-sim/internal/jobposting"
)

func aiBank(jobposting.Requirement) Bank {
	return Bank{
		{
			Question:   "Walk us through a machine learning model you built end to end. Which frameworks did you use, and how did you get from raw data to a deployed model?",
			Assessment: "Depth of ML knowledge, grasp of the model lifecycle and hands-on delivery",
			Tip:        "Pick one project and cover data preparation, model choice, evaluation metrics and how the model was served.",
		},
		{
			Question:   "How do you approach feature engineering and model evaluation? Which metrics do you favour for different problems?",
			Assessment: "ML fundamentals, data analysis and problem framing",
			Tip:        "Name concrete techniques such as normalization, cross-validation or confusion matrices and say when each matters.",
		},
		{
			Question:   "Tell us about a model that underperformed once it met real data. How did you find the cause and fix it?",
			Assessment: "Debugging under real conditions and technical depth",
			Tip:        "Talk about monitoring, drift detection and retraining to show production thinking.",
		},
		{
			Question:   "How do you keep up with the pace of change in AI? Which recent techniques or tools caught your attention?",
			Assessment: "Continuous learning and awareness of the field",
			Tip:        "Mention recent courses or certifications and one technique you have actually tried.",
		},
		{
			Question:   "How do you build AI systems responsibly? What do you do about bias and fairness?",
			Assessment: "Understanding of AI ethics and bias mitigation",
			Tip:        "Describe a concrete check you would add to a pipeline, not only principles.",
		},
	}
}

func frontendBank(job jobposting.Requirement) Bank {
	skill := first(job.Skills, "React")

	return Bank{
		{
			Question:   fmt.Sprintf("Walk us through your experience with %s or a similar frontend framework. Describe a complex component you built and the design decisions behind it.", skill),
			Assessment: "Framework expertise, component architecture and state management",
			Tip:        "Cover component boundaries, lifecycle and how state flows through the tree.",
		},
		{
			Question:   "How do you make sure an application works well across devices and browsers?",
			Assessment: "Responsive design, cross-browser testing and user experience",
			Tip:        "Mention CSS Grid, Flexbox, media queries, a mobile-first approach and accessibility.",
		},
		{
			Question:   "How do you integrate with APIs and manage complex application state?",
			Assessment: "Backend integration, state management patterns and REST knowledge",
			Tip:        "Compare the state management approaches you have used and when you would pick each.",
		},
		{
			Question:   "How do you improve frontend performance? Which techniques have made a measurable difference?",
			Assessment: "Web performance optimization and browser internals",
			Tip:        "Talk about code splitting, lazy loading, image optimization and memoization with numbers if you have them.",
		},
		{
			Question:   "How do you test frontend applications? Which tools and practices do you prefer?",
			Assessment: "Testing knowledge and quality mindset",
			Tip:        "Separate unit, component and end-to-end tests and explain what each one protects.",
		},
	}
}

func fullStackBank(jobposting.Requirement) Bank {
	return Bank{
		{
			Question:   "Describe a full-stack project you built from scratch. What architectural decisions did you make on the frontend and the backend?",
			Assessment: "Full-stack architecture, system design and ownership",
			Tip:        "Explain how the two sides talk to each other and why you drew the boundary where you did.",
		},
		{
			Question:   "How do you design APIs that frontend applications consume? Which REST principles do you follow?",
			Assessment: "API design and integration thinking",
			Tip:        "Cover HTTP methods, status codes, documentation and versioning.",
		},
		{
			Question:   "How do you choose a database for a project, and how do you optimize slow queries?",
			Assessment: "Data modelling, performance tuning and data architecture",
			Tip:        "Contrast relational and document stores, then talk about indexes and query plans.",
		},
		{
			Question:   "How do you take a full-stack application to production and keep it reliable as it grows?",
			Assessment: "Deployment knowledge and production readiness",
			Tip:        "Mention CI/CD pipelines, environment management, monitoring and error handling.",
		},
		{
			Question:   "Which modern full-stack frameworks have you used, and what did they make easier?",
			Assessment: "Awareness of current practice and framework selection",
			Tip:        "Talk about server-side rendering, routing and the productivity trade-offs you noticed.",
		},
	}
}

func devOpsBank(jobposting.Requirement) Bank {
	return Bank{
		{
			Question:   "Describe your experience with containers and orchestration such as Docker and Kubernetes. Walk us through a deployment.",
			Assessment: "Container expertise, orchestration and infrastructure experience",
			Tip:        "Cover image builds, networking, configuration and how rollouts are controlled.",
		},
		{
			Question:   "Tell us about CI/CD pipelines you have built. How were testing and deployment automated?",
			Assessment: "Automation, pipeline design and release practice",
			Tip:        "Describe the stages from build to deploy and how a failing stage is handled.",
		},
		{
			Question:   "How do you approach infrastructure as code? Which tools have you used and what did they give you?",
			Assessment: "Infrastructure thinking and configuration as code",
			Tip:        "Talk about reproducibility, review of infrastructure changes and state management.",
		},
		{
			Question:   "How do you monitor production systems and respond when something breaks?",
			Assessment: "Operations knowledge, troubleshooting and observability",
			Tip:        "Mention logs, metrics, alerting and a short incident you handled.",
		},
		{
			Question:   "How do you balance security with operational speed in your infrastructure?",
			Assessment: "Security mindset and risk management",
			Tip:        "Discuss access control, secrets handling and secure deployment defaults.",
		},
	}
}

func qaBank(jobposting.Requirement) Bank {
	return Bank{
		{
			Question:   "Describe your test automation strategy. Which kinds of tests do you prioritize and why?",
			Assessment: "QA methodology, automation skills and testing mindset",
			Tip:        "Walk through unit, integration and end-to-end tests and the tools you use for each.",
		},
		{
			Question:   "How do you find and document bugs? Describe a difficult bug you tracked down.",
			Assessment: "Bug analysis, documentation and communication",
			Tip:        "Show a methodical report: reproduction steps, expected and actual behaviour, impact.",
		},
		{
			Question:   "What is your experience with API testing? What do you focus on?",
			Assessment: "API testing expertise and technical depth",
			Tip:        "Cover status codes, payload validation and edge cases.",
		},
		{
			Question:   "How do you work with developers to raise code quality? Have you practised test-driven development?",
			Assessment: "Collaboration and quality culture",
			Tip:        "Give an example of a review or pairing session that changed how a feature was built.",
		},
		{
			Question:   "How do you judge test coverage? What makes a test suite good?",
			Assessment: "Quality thinking and coverage understanding",
			Tip:        "Talk about meaningful coverage, maintainability and flaky test handling in CI.",
		},
	}
}

func securityBank(jobposting.Requirement) Bank {
	return Bank{
		{
			Question:   "Describe your experience with security assessments or penetration testing. What is your methodology?",
			Assessment: "Security testing knowledge and a methodical approach",
			Tip:        "Reference the OWASP Top 10 and threat modelling.",
		},
		{
			Question:   "Which vulnerabilities do developers introduce most often, and how do you prevent them?",
			Assessment: "Secure development and code review skills",
			Tip:        "Mention injection, XSS, CSRF and broken authentication with one mitigation each.",
		},
		{
			Question:   "How do you approach encryption and key management when protecting data?",
			Assessment: "Cryptography knowledge and data protection",
			Tip:        "Discuss protocols, key rotation and secure storage.",
		},
		{
			Question:   "How do you stay informed about new threats? Describe a recent vulnerability that affected your work.",
			Assessment: "Security awareness and continuous learning",
			Tip:        "Name the sources you follow, such as CVE feeds and security communities.",
		},
		{
			Question:   "How do you make sure systems meet compliance requirements such as GDPR?",
			Assessment: "Compliance knowledge and governance",
			Tip:        "Talk about data privacy, audit trails and documentation.",
		},
	}
}

func seniorBank(jobposting.Requirement) Bank {
	return Bank{
		{
			Question:   "How do you approach system architecture? How do you choose technologies and justify the decisions?",
			Assessment: "System design, decision making and technical leadership",
			Tip:        "Discuss trade-offs, scalability and the patterns you rely on.",
		},
		{
			Question:   "Tell us about mentoring less experienced developers. How do you run code reviews and share knowledge?",
			Assessment: "Leadership, mentoring and knowledge transfer",
			Tip:        "Explain how you balance guidance with autonomy.",
		},
		{
			Question:   "Describe a hard technical challenge that led to a significant improvement. How did you tackle it?",
			Assessment: "Problem solving at scale and growth mindset",
			Tip:        "Pick an example with a measurable before and after.",
		},
		{
			Question:   "How do you handle technical debt? When does refactoring win over new features?",
			Assessment: "Strategic thinking and pragmatism",
			Tip:        "Show how you weigh delivery speed against maintainability.",
		},
		{
			Question:   "What does clean code mean to you, and how do you keep quality high across a team?",
			Assessment: "Code quality standards and leading by example",
			Tip:        "Reference principles such as SOLID and DRY and how you enforce standards.",
		},
	}
}

func juniorBank(job jobposting.Requirement) Bank {
	skill := first(job.Skills, "the required tech stack")

	return Bank{
		{
			Question:   fmt.Sprintf("Tell us how you learned %s. Which resources helped most, and what have you built with it?", skill),
			Assessment: "Learning ability, self-motivation and hands-on experience",
			Tip:        "Mention courses, workshops and at least one project you finished.",
		},
		{
			Question:   "Describe the most challenging project you have worked on. What did you struggle with and how did you get past it?",
			Assessment: "Problem solving, resilience and growth mindset",
			Tip:        "Focus on what you learned rather than on a perfect outcome.",
		},
		{
			Question:   "How do you pick up a new technology or framework? Give a recent example.",
			Assessment: "Learning strategy, adaptability and curiosity",
			Tip:        "Describe the steps you follow, from documentation to a small project.",
		},
		{
			Question:   "What is your experience with version control and working with other developers?",
			Assessment: "Git proficiency, teamwork and collaboration basics",
			Tip:        "Talk about branches, pull requests and feedback you received in review.",
		},
		{
			Question:   "What excites you about software development, and how does this role fit your goals?",
			Assessment: "Motivation and long-term thinking",
			Tip:        "Connect something you built to where you want to grow.",
		},
	}
}

func genericBank(job jobposting.Requirement) Bank {
	skill := first(job.Skills, "the required tech stack")
	responsibility := first(job.Responsibilities, "develop software solutions")

	return Bank{
		{
			Question:   fmt.Sprintf("Tell us about your experience with %s. How have you applied it in your projects or work?", skill),
			Assessment: "Technical expertise and practical application",
			Tip:        "Point to specific projects and show depth rather than breadth.",
		},
		{
			Question:   fmt.Sprintf("Describe a time when you had to %s. What was your approach and what was the outcome?", responsibility),
			Assessment: "Problem-solving method and technical decision making",
			Tip:        "Use the STAR structure: situation, task, action, result.",
		},
		{
			Question:   "How do you keep your code maintainable and of high quality?",
			Assessment: "Development practice and professional standards",
			Tip:        "Mention testing, reviews, documentation and clean code habits.",
		},
		{
			Question:   "Tell us about working in a team or in an agile environment.",
			Assessment: "Teamwork, communication and agile understanding",
			Tip:        "Describe your part in planning, stand-ups and retrospectives.",
		},
		{
			Question:   "What are your professional goals, and how does this position fit them?",
			Assessment: "Motivation and alignment with the role",
			Tip:        "Show how the role builds on what you have already learned.",
		},
	}
}
