package models

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// DistributionEntry is one label/count pair in a dashboard breakdown.
type DistributionEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type DailyStat struct {
	Date            string `json:"date"`
	NewParticipants int    `json:"newParticipants"`
	CompletedTests  int    `json:"completedTests"`
}

type DashboardResponse struct {
	TotalParticipants     int                 `json:"totalParticipants"`
	CompletedTests        int                 `json:"completedTests"`
	ActiveSessions        int                 `json:"activeSessions"`
	CompletionRate        float64             `json:"completionRate"`
	GenderDistribution    []DistributionEntry `json:"genderDistribution"`
	EducationDistribution []DistributionEntry `json:"educationDistribution"`
	AgeDistribution       []DistributionEntry `json:"ageDistribution"`
	DailyStats            []DailyStat         `json:"dailyStats"`
}

type Participant struct {
	SessionID         string  `json:"sessionId"`
	Name              string  `json:"name"`
	Gender            string  `json:"gender"`
	BirthYear         *int    `json:"birthYear,omitempty"`
	Age               *int    `json:"age,omitempty"`
	EducationLevel    string  `json:"educationLevel"`
	MaritalStatus     string  `json:"maritalStatus"`
	Status            string  `json:"status"`
	CurrentDimension  string  `json:"currentDimension"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	CompletionDate    *string `json:"completionDate,omitempty"`
}

type ParticipantListResponse struct {
	Participants      []Participant `json:"participants"`
	TotalPages        int           `json:"totalPages"`
	CurrentPage       int           `json:"currentPage"`
	TotalParticipants int           `json:"totalParticipants"`
}
