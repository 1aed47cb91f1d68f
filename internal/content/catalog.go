package content

// Owner details shared by several blocks
const (
	OwnerName   = "MD KAIF"
	Email       = "Md.71.kaif@gmail.com"
	LinkedInURL = "https://www.linkedin.com/in/md-kaif101/"
	GitHubURL   = "https://github.com/mdkaif10"
)

func aboutBlock(id string) Block {
	return Block{
		Kind:   KindAbout,
		FileID: id,
		Name:   OwnerName,
		Roles: []string{
			"Full Stack Developer",
			"Cloud Technology Enthusiast",
			"Information Security Specialist",
		},
		Bio: "B.Tech CSE student specializing in Cloud Technology and Information Security, " +
			"with expertise in Python, JavaScript, React, Node.js, MongoDB, Django, and Docker.",
		Links: []Link{
			{Label: "LinkedIn", URL: LinkedInURL, Tooltip: "Connect on LinkedIn"},
			{Label: "GitHub", URL: GitHubURL, Tooltip: "Check out my GitHub"},
			{Label: "Contact Me", URL: "mailto:" + Email, Tooltip: "Send me an email"},
		},
	}
}

func experienceBlock(id string) Block {
	return Block{
		Kind:    KindExperience,
		FileID:  id,
		Heading: "Experience",
		Jobs: []Job{
			{
				Title:       "SDE Intern",
				Company:     "ICM Guwahati",
				Period:      "2024",
				Description: "Worked on a Office Management System Project.",
			},
			{
				Title:       "Blockchain Head",
				Company:     "GDSC ADTU",
				Period:      "2023 - 2024",
				Description: "Led blockchain initiatives and organized technical events.",
			},
			{
				Title:       "Manager and Exam Controller Intern",
				Company:     "Nxtera Services",
				Period:      "2023",
				Description: "Developed internal software solutions and managed systems.",
			},
			{
				Title:       "Site Supervisor, IT Manager",
				Company:     "Aptech",
				Period:      "2022-2023",
				Description: "Supervised site operations and managed IT resources for exam administration.",
			},
		},
	}
}

func projectsBlock(id string) Block {
	return Block{
		Kind:    KindProjects,
		FileID:  id,
		Heading: "Projects",
		Projects: []Project{
			{
				Title:       "Student Management System",
				Tech:        []string{"Python", "Tkinter", "SQLite"},
				Description: "Comprehensive student record management system.",
			},
			{
				Title:       "Chat Application",
				Tech:        []string{"React", "Node.js", "MongoDB"},
				Description: "Real-time chat application with authentication.",
			},
		},
	}
}

func contactBlock(id string) Block {
	return Block{
		Kind:    KindContact,
		FileID:  id,
		Heading: "Contact",
		Links: []Link{
			{Label: Email, URL: "mailto:" + Email},
			{Label: "linkedin.com/in/md-kaif101", URL: LinkedInURL},
		},
		Skills: []Skill{
			{Name: "JavaScript", Level: 90},
			{Name: "Python", Level: 85},
			{Name: "React", Level: 80},
			{Name: "Node.js", Level: 75},
			{Name: "MongoDB", Level: 70},
		},
	}
}
