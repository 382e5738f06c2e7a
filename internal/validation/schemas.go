package validation

import "devconnector/internal/models"

// Register validates POST /api/users.
var Register = Schema[models.RegisterRequest]{
	{Name: "name", Value: func(r models.RegisterRequest) string { return r.Name },
		Rules: []Rule{NotEmpty("Name is required")}},
	{Name: "email", Value: func(r models.RegisterRequest) string { return r.Email },
		Rules: []Rule{IsEmail("Please include a valid email")}},
	{Name: "password", Value: func(r models.RegisterRequest) string { return r.Password },
		Rules: []Rule{
			MinLength(6, "Please enter a password with 6 or more characters"),
			MaxBytes(72, "Please enter a password with 72 or fewer characters"),
		}},
}

// Login validates POST /api/auth.
var Login = Schema[models.LoginRequest]{
	{Name: "email", Value: func(r models.LoginRequest) string { return r.Email },
		Rules: []Rule{IsEmail("Please include a valid email")}},
	{Name: "password", Value: func(r models.LoginRequest) string { return r.Password },
		Rules: []Rule{NotEmpty("Password is required")}},
}

// Post validates POST /api/posts.
var Post = Schema[models.TextRequest]{
	{Name: "text", Value: func(r models.TextRequest) string { return r.Text },
		Rules: []Rule{NotEmpty("Text is required")}},
}

// Comment validates POST /api/posts/comment/:id.
var Comment = Post

// Profile validates POST /api/profile.
var Profile = Schema[models.ProfileRequest]{
	{Name: "status", Value: func(r models.ProfileRequest) string { return r.Status },
		Rules: []Rule{NotEmpty("Status is required")}},
	{Name: "skills", Value: func(r models.ProfileRequest) string { return string(r.Skills) },
		Rules: []Rule{HasSkills("Skills is required")}},
}

// Experience validates PUT /api/profile/experience.
var Experience = Schema[models.ExperienceRequest]{
	{Name: "title", Value: func(r models.ExperienceRequest) string { return r.Title },
		Rules: []Rule{NotEmpty("Title is required")}},
	{Name: "company", Value: func(r models.ExperienceRequest) string { return r.Company },
		Rules: []Rule{NotEmpty("Company is required")}},
	{Name: "from", Value: func(r models.ExperienceRequest) string { return r.From },
		Rules: []Rule{NotEmpty("From date is required"), IsDate("From date is invalid")}},
	{Name: "to", Value: func(r models.ExperienceRequest) string { return r.To },
		Rules: []Rule{IsDate("To date is invalid")}},
}

// Education validates PUT /api/profile/education.
var Education = Schema[models.EducationRequest]{
	{Name: "school", Value: func(r models.EducationRequest) string { return r.School },
		Rules: []Rule{NotEmpty("School is required")}},
	{Name: "degree", Value: func(r models.EducationRequest) string { return r.Degree },
		Rules: []Rule{NotEmpty("Degree is required")}},
	{Name: "fieldofstudy", Value: func(r models.EducationRequest) string { return r.FieldOfStudy },
		Rules: []Rule{NotEmpty("Field of study is required")}},
	{Name: "from", Value: func(r models.EducationRequest) string { return r.From },
		Rules: []Rule{NotEmpty("From date is required"), IsDate("From date is invalid")}},
	{Name: "to", Value: func(r models.EducationRequest) string { return r.To },
		Rules: []Rule{IsDate("To date is invalid")}},
}
