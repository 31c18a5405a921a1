package models

// ── Session API ───────────────────────────────────────────

type CreateSessionRequest struct {
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	BirthYear      *int   `json:"birth_year,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"`

	// Legacy camelCase aliases some clients still send.
	BirthYearAlt      *int   `json:"birthYear,omitempty"`
	EducationLevelAlt string `json:"educationLevel,omitempty"`
	MaritalStatusAlt  string `json:"maritalStatus,omitempty"`
}

type SessionResponse struct {
	SessionID             string            `json:"session_id"`
	Name                  string            `json:"name"`
	Status                SessionStatus     `json:"status"`
	CurrentDimension      Dimension         `json:"current_dimension"`
	CurrentQuestionNumber int               `json:"current_question_number"`
	TotalDimensions       int               `json:"total_dimensions"`
	DimensionProgress     map[Dimension]int `json:"dimension_progress"`
}

type QuestionResponse struct {
	ItemID             string    `json:"question_id"`
	Text               string    `json:"text"`
	Dimension          Dimension `json:"dimension"`
	QuestionNumber     int       `json:"question_number"`
	ReverseScored      bool      `json:"reverse_scored"`
	TotalAnswered      int       `json:"total_answered"`
	TotalQuestions     int       `json:"total_questions"`
	ProgressPercentage float64   `json:"progress_percentage"`
}

type AnswerSubmission struct {
	SessionID string `json:"session_id"`
	ItemID    string `json:"question_id"`
	Response  int    `json:"response"`
}

type SubmitAnswerResponse struct {
	Message            string        `json:"message"`
	Status             SessionStatus `json:"status"`
	TotalAnswered      int           `json:"total_answered"`
	ProgressPercentage float64       `json:"progress_percentage"`
	CurrentTheta       float64       `json:"current_theta"`
	CurrentSE          float64       `json:"current_se"`
}

type DimensionReport struct {
	Dimension    Dimension `json:"dimension"`
	Theta        float64   `json:"theta"`
	SE           float64   `json:"se"`
	Administered int       `json:"administered_count"`
}

// ── Final report ──────────────────────────────────────────

type DimensionScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"` // 1-5 scale
	Level string  `json:"level"` // high / medium / low
	Theta float64 `json:"theta"`
	SE    float64 `json:"se"`
}

type ReportResponse struct {
	SessionID        string                       `json:"session_id"`
	Name             string                       `json:"name"`
	CompletionDate   string                       `json:"completion_date"`
	Scores           map[Dimension]DimensionScore `json:"scores"`
	DetailedAnalysis string                       `json:"detailed_analysis"`
	Recommendations  []string                     `json:"recommendations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
