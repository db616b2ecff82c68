package roles

// Profile describes a target job role: the keywords the deterministic
// scorers match against and the advisory per-category weights.
type Profile struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Keywords    []string       `json:"keywords"`
	Description string         `json:"description"`
	Weights     map[string]int `json:"weights"`
}

// Catalog is an insertion-ordered, read-only registry of role profiles.
// It is built once at startup and never mutated, so it is safe to share
// across concurrent requests without locking.
type Catalog struct {
	order []string
	byID  map[string]*Profile
}

func NewCatalog(profiles []Profile) *Catalog {
	c := &Catalog{
		byID: make(map[string]*Profile, len(profiles)),
	}
	for i := range profiles {
		p := profiles[i]
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.order = append(c.order, p.ID)
		c.byID[p.ID] = &p
	}
	return c
}

// Get looks up a profile by role id.
func (c *Catalog) Get(id string) (*Profile, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns profiles in insertion order.
func (c *Catalog) All() []*Profile {
	out := make([]*Profile, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IDs returns role ids in insertion order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Default builds the built-in role catalog.
func Default() *Catalog {
	return NewCatalog([]Profile{
		{
			ID:    "software_engineer",
			Title: "Software Engineer",
			Keywords: []string{
				"python", "javascript", "react", "fastapi", "sql",
				"git", "docker", "aws", "api", "microservices",
			},
			Description: "We are looking for a skilled Software Engineer with experience in full-stack development. " +
				"Strong problem-solving skills and hands-on experience with modern frameworks are required.",
			Weights: map[string]int{"skills": 30, "experience": 40, "education": 10, "formatting": 10, "relevance": 10},
		},
		{
			ID:    "frontend_developer",
			Title: "Frontend Developer",
			Keywords: []string{
				"html", "css", "javascript", "react", "typescript",
				"redux", "ui", "ux", "responsive design",
			},
			Description: "Frontend Developer responsible for building user-facing interfaces. " +
				"Strong knowledge of React, UI/UX principles, and responsive design is required.",
			Weights: map[string]int{"skills": 35, "experience": 30, "education": 10, "formatting": 15, "relevance": 10},
		},
		{
			ID:    "backend_developer",
			Title: "Backend Developer",
			Keywords: []string{
				"python", "fastapi", "django", "nodejs",
				"sql", "nosql", "rest api", "authentication",
			},
			Description: "Backend Developer responsible for server-side logic, database integration, " +
				"and API development. Experience with scalable systems is preferred.",
			Weights: map[string]int{"skills": 40, "experience": 35, "education": 10, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "full_stack_developer",
			Title: "Full Stack Developer",
			Keywords: []string{
				"react", "nodejs", "python", "fastapi",
				"mongodb", "mysql", "docker", "aws",
			},
			Description: "Full Stack Developer with hands-on experience across frontend and backend technologies. " +
				"Ability to design and deploy complete applications is essential.",
			Weights: map[string]int{"skills": 35, "experience": 35, "education": 10, "formatting": 10, "relevance": 10},
		},
		{
			ID:    "data_scientist",
			Title: "Data Scientist",
			Keywords: []string{
				"python", "pandas", "numpy", "scikit-learn",
				"tensorflow", "statistics", "sql", "data visualization",
			},
			Description: "Join our data team to build predictive models and analyze large datasets. " +
				"Strong foundation in statistics and machine learning is required.",
			Weights: map[string]int{"skills": 35, "experience": 30, "education": 20, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "machine_learning_engineer",
			Title: "Machine Learning Engineer",
			Keywords: []string{
				"machine learning", "deep learning", "python",
				"tensorflow", "pytorch", "model deployment", "mlops",
			},
			Description: "Machine Learning Engineer responsible for developing, training, " +
				"and deploying ML models into production systems.",
			Weights: map[string]int{"skills": 40, "experience": 30, "education": 15, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "data_analyst",
			Title: "Data Analyst",
			Keywords: []string{
				"sql", "excel", "power bi", "tableau",
				"python", "data cleaning", "reporting",
			},
			Description: "Data Analyst role focused on data interpretation, reporting, " +
				"and business insights using analytical tools.",
			Weights: map[string]int{"skills": 35, "experience": 30, "education": 20, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "devops_engineer",
			Title: "DevOps Engineer",
			Keywords: []string{
				"docker", "kubernetes", "ci/cd",
				"aws", "linux", "terraform", "monitoring",
			},
			Description: "DevOps Engineer responsible for automating deployments, " +
				"managing infrastructure, and ensuring system reliability.",
			Weights: map[string]int{"skills": 40, "experience": 35, "education": 10, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "cloud_engineer",
			Title: "Cloud Engineer",
			Keywords: []string{
				"aws", "azure", "gcp",
				"cloud architecture", "security", "networking",
			},
			Description: "Cloud Engineer responsible for designing and managing " +
				"cloud-based infrastructure and services.",
			Weights: map[string]int{"skills": 40, "experience": 35, "education": 10, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "cyber_security_analyst",
			Title: "Cyber Security Analyst",
			Keywords: []string{
				"network security", "siem", "incident response",
				"penetration testing", "firewalls", "risk assessment",
			},
			Description: "Cyber Security Analyst responsible for protecting systems " +
				"and data from security threats and vulnerabilities.",
			Weights: map[string]int{"skills": 45, "experience": 30, "education": 15, "formatting": 5, "relevance": 5},
		},
		{
			ID:    "product_manager",
			Title: "Product Manager",
			Keywords: []string{
				"agile", "scrum", "roadmap",
				"user stories", "jira", "stakeholder management",
			},
			Description: "Product Manager responsible for defining product vision, " +
				"managing roadmaps, and coordinating cross-functional teams.",
			Weights: map[string]int{"skills": 25, "experience": 45, "education": 10, "formatting": 10, "relevance": 10},
		},
		{
			ID:    "project_manager",
			Title: "Project Manager",
			Keywords: []string{
				"project planning", "risk management",
				"agile", "scrum", "communication",
			},
			Description: "Project Manager responsible for planning, executing, " +
				"and delivering projects within scope and timeline.",
			Weights: map[string]int{"skills": 20, "experience": 50, "education": 15, "formatting": 5, "relevance": 10},
		},
		{
			ID:    "ui_ux_designer",
			Title: "UI/UX Designer",
			Keywords: []string{
				"figma", "wireframing", "prototyping",
				"user research", "usability testing", "design systems",
			},
			Description: "UI/UX Designer focused on creating intuitive, " +
				"user-centered designs and improving user experience.",
			Weights: map[string]int{"skills": 35, "experience": 25, "education": 15, "formatting": 15, "relevance": 10},
		},
		{
			ID:    "qa_engineer",
			Title: "QA Engineer",
			Keywords: []string{
				"manual testing", "automation testing",
				"selenium", "test cases", "bug tracking",
			},
			Description: "QA Engineer responsible for ensuring software quality " +
				"through manual and automated testing.",
			Weights: map[string]int{"skills": 30, "experience": 35, "education": 15, "formatting": 10, "relevance": 10},
		},
		{
			ID:    "intern",
			Title: "Intern",
			Keywords: []string{
				"basic programming", "projects",
				"learning mindset", "communication",
			},
			Description: "Internship role for students or fresh graduates " +
				"looking to gain real-world industry experience.",
			Weights: map[string]int{"skills": 20, "experience": 10, "education": 35, "formatting": 15, "relevance": 20},
		},
		{
			ID:    "fresher",
			Title: "Fresher / Graduate Trainee",
			Keywords: []string{
				"python", "java", "sql",
				"projects", "internship", "problem solving",
			},
			Description: "Entry-level role for recent graduates with " +
				"strong fundamentals and project exposure.",
			Weights: map[string]int{"skills": 25, "experience": 10, "education": 35, "formatting": 10, "relevance": 20},
		},
	})
}
