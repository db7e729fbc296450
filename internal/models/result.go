package models

type UploadResponse struct {
	Message      string `json:"message"`
	Filename     string `json:"filename"`
	SubmissionID string `json:"submission_id"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// JDAnalysis partitions the keyword set harvested from a job description into
// phrases found in the resume text and phrases absent from it. The two lists
// are disjoint and their union is the full keyword set.
type JDAnalysis struct {
	Matches   []string `json:"matches"`
	Missing   []string `json:"missing"`
	JDPresent bool     `json:"jd_present"`
}

// ResultPayload is the terminal result sent over the notification channel
// (after the COMPLETE_JSON: prefix) and stored verbatim in the candidate row.
// The key set is the stored format; existing rows depend on it staying stable.
type ResultPayload struct {
	Score       float64    `json:"score"`
	Filename    string     `json:"filename"`
	SkillsCount int        `json:"skills_count"`
	Skills      []string   `json:"skills"`
	Internships int        `json:"internships"`
	Projects    int        `json:"projects"`
	CGPA        float64    `json:"cgpa"`
	Experience  int        `json:"experience"`
	RawText     string     `json:"raw_text"`
	JDPresent   bool       `json:"jd_present"`
	JDAnalysis  JDAnalysis `json:"jd_analysis"`
}
