package assessment

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/personality-cat/backend/internal/itembank"
	"github.com/personality-cat/backend/internal/models"
)

// ItemProvider supplies a dimension's item pool for a participant profile.
type ItemProvider interface {
	ItemsFor(ctx context.Context, dim models.Dimension, demo models.Demographics, count int) ([]models.Item, error)
}

// TextCompleter generates free text from a prompt. Nil is allowed; the
// report then uses the deterministic fallback analysis.
type TextCompleter interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Service coordinates the engine, the item provider, and the session store.
// Mutating operations on the same session are serialized through a
// per-session lock registry so concurrent submits can't interleave.
type Service struct {
	store    SessionStore
	engine   *Engine
	provider ItemProvider
	llm      TextCompleter

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store SessionStore, engine *Engine, provider ItemProvider, llm TextCompleter) *Service {
	return &Service{
		store:    store,
		engine:   engine,
		provider: provider,
		llm:      llm,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *Service) sessionLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// releaseLock drops a session's registry entry so the map doesn't grow with
// every session ever created. Safe once the session is completed: completed
// sessions reject mutation, so a goroutine still holding the old mutex
// cannot conflict with one that allocates a fresh one.
func (s *Service) releaseLock(id string) {
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
}

// CreateSession registers a new participant, resolves the five item pools
// for their demographic profile, and stores the session in Active state.
func (s *Service) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*models.SessionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	demo := models.Demographics{
		Gender:         req.Gender,
		BirthYear:      req.BirthYear,
		EducationLevel: req.EducationLevel,
		MaritalStatus:  req.MaritalStatus,
	}
	// Legacy camelCase fields win only when the snake_case ones are absent.
	if demo.BirthYear == nil {
		demo.BirthYear = req.BirthYearAlt
	}
	if demo.EducationLevel == "" {
		demo.EducationLevel = req.EducationLevelAlt
	}
	if demo.MaritalStatus == "" {
		demo.MaritalStatus = req.MaritalStatusAlt
	}
	demo.AgeGroup = calculateAgeGroup(demo.BirthYear)

	cfg := s.engine.Config()
	pools := make(map[models.Dimension][]models.Item, len(models.AllDimensions))
	for _, dim := range models.AllDimensions {
		items, err := s.provider.ItemsFor(ctx, dim, demo, cfg.MaxPerDimension)
		if err != nil {
			return nil, fmt.Errorf("resolving %s items: %w", dim, err)
		}
		pools[dim] = items
	}

	sess := s.engine.NewSession(uuid.New().String(), name, demo, pools)
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	log.Printf("[assessment] session %s created for %q (age group %s)", sess.ID, name, demo.AgeGroup)

	progress := make(map[models.Dimension]int, len(models.AllDimensions))
	for _, dim := range models.AllDimensions {
		progress[dim] = 0
	}
	return &models.SessionResponse{
		SessionID:             sess.ID,
		Name:                  sess.Name,
		Status:                sess.Status,
		CurrentDimension:      sess.CurrentDimension,
		CurrentQuestionNumber: 1,
		TotalDimensions:       len(models.AllDimensions),
		DimensionProgress:     progress,
	}, nil
}

// NextQuestion returns the next item for the session, with the item text
// personalized to the participant. ErrNoMoreQuestions means the assessment
// is over.
func (s *Service) NextQuestion(ctx context.Context, sessionID string) (*models.QuestionResponse, error) {
	l := s.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		defer s.releaseLock(sessionID)
		return nil, err
	}

	item, done := s.engine.NextItem(sess)
	// NextItem may advance the dimension pointer or complete the session;
	// persist either way.
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	if done {
		// Completed: the registry entry is no longer needed (deferred so it
		// runs after the unlock above).
		defer s.releaseLock(sessionID)
		return nil, ErrNoMoreQuestions
	}

	cfg := s.engine.Config()
	st := sess.State(sess.CurrentDimension)
	return &models.QuestionResponse{
		ItemID:             item.ID,
		Text:               itembank.Personalize(item.Text, sess.Name),
		Dimension:          item.Dimension,
		QuestionNumber:     st.Administered() + 1,
		ReverseScored:      item.ReverseScored,
		TotalAnswered:      sess.TotalAnswered,
		TotalQuestions:     cfg.MaxQuestions,
		ProgressPercentage: progressPct(sess.TotalAnswered, cfg.MaxQuestions),
	}, nil
}

// SubmitAnswer records one response and returns the updated progress and
// the re-estimated ability for the current dimension.
func (s *Service) SubmitAnswer(ctx context.Context, sub models.AnswerSubmission) (*models.SubmitAnswerResponse, error) {
	l := s.sessionLock(sub.SessionID)
	l.Lock()
	defer l.Unlock()

	sess, err := s.store.Get(ctx, sub.SessionID)
	if err != nil {
		defer s.releaseLock(sub.SessionID)
		return nil, err
	}

	st, err := s.engine.SubmitAnswer(sess, sub.ItemID, sub.Response)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	cfg := s.engine.Config()
	msg := "Answer recorded"
	if sess.Status == models.SessionCompleted {
		msg = "Test completed"
		log.Printf("[assessment] session %s completed after %d answers", sess.ID, sess.TotalAnswered)
		s.releaseLock(sess.ID)
	}
	return &models.SubmitAnswerResponse{
		Message:            msg,
		Status:             sess.Status,
		TotalAnswered:      sess.TotalAnswered,
		ProgressPercentage: progressPct(sess.TotalAnswered, cfg.MaxQuestions),
		CurrentTheta:       roundTo(st.Theta, 2),
		CurrentSE:          roundTo(st.SE, 3),
	}, nil
}

// DimensionReport exposes one dimension's current estimate mid-session.
// The memory store hands back the live session, so even this read path
// takes the session lock against concurrent submits.
func (s *Service) DimensionReport(ctx context.Context, sessionID string, dim models.Dimension) (*models.DimensionReport, error) {
	if !models.ValidDimensions[dim] {
		return nil, fmt.Errorf("unknown dimension %q", dim)
	}

	l := s.sessionLock(sessionID)
	l.Lock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		l.Unlock()
		s.releaseLock(sessionID)
		return nil, err
	}
	report := &models.DimensionReport{
		Dimension:    dim,
		Theta:        roundTo(sess.State(dim).Theta, 2),
		SE:           roundTo(sess.State(dim).SE, 3),
		Administered: sess.State(dim).Administered(),
	}
	completed := sess.Status == models.SessionCompleted
	l.Unlock()

	// Don't let reads of finished (or unknown) sessions repopulate the
	// registry after SubmitAnswer evicted the entry.
	if completed {
		s.releaseLock(sessionID)
	}
	return report, nil
}

// Report builds the final trait report for a completed session. The status
// check and score extraction run under the session lock (the memory store
// shares the live session with writers); the narrative call does not.
func (s *Service) Report(ctx context.Context, sessionID string) (*models.ReportResponse, error) {
	l := s.sessionLock(sessionID)
	l.Lock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		l.Unlock()
		s.releaseLock(sessionID)
		return nil, err
	}
	if sess.Status != models.SessionCompleted {
		l.Unlock()
		return nil, ErrNotCompleted
	}

	scores := make(map[models.Dimension]models.DimensionScore, len(models.AllDimensions))
	for _, dim := range models.AllDimensions {
		st := sess.State(dim)
		mean := adjustedMean(st.Responses)
		pct := (mean - 1) / 4 * 100
		scores[dim] = models.DimensionScore{
			Name:  dimensionLabel(dim),
			Score: roundTo(mean, 2),
			Level: scoreLevel(pct),
			Theta: roundTo(st.Theta, 2),
			SE:    roundTo(st.SE, 3),
		}
	}

	name := sess.Name
	completed := sess.CreatedAt
	if sess.CompletedAt != nil {
		completed = *sess.CompletedAt
	}
	l.Unlock()
	s.releaseLock(sessionID)

	return &models.ReportResponse{
		SessionID:        sessionID,
		Name:             name,
		CompletionDate:   completed.Format(time.RFC3339),
		Scores:           scores,
		DetailedAnalysis: s.analysis(ctx, name, scores),
		Recommendations:  recommendations(),
	}, nil
}

// analysis asks the model for a narrative; any failure falls back to a
// deterministic summary so the report endpoint never depends on the API.
func (s *Service) analysis(ctx context.Context, name string, scores map[models.Dimension]models.DimensionScore) string {
	if s.llm != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "Participant: %s\nTrait scores (1-5 scale):\n", name)
		for _, dim := range models.AllDimensions {
			sc := scores[dim]
			fmt.Fprintf(&b, "- %s: %.2f (%s)\n", sc.Name, sc.Score, sc.Level)
		}
		b.WriteString("\nWrite a short, warm, second-person personality analysis (2-3 paragraphs). Plain prose, no headings.")

		text, err := s.llm.Complete(ctx, analysisSystemPrompt, b.String())
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
		if err != nil {
			log.Printf("WARN: report analysis generation failed: %v", err)
		}
	}
	return fallbackAnalysis(scores)
}

const analysisSystemPrompt = "You are a psychologist writing personality feedback based on Big Five trait scores. Be encouraging, concrete, and avoid clinical jargon."

func fallbackAnalysis(scores map[models.Dimension]models.DimensionScore) string {
	var parts []string
	for _, dim := range models.AllDimensions {
		sc := scores[dim]
		parts = append(parts, fmt.Sprintf("%s: %s (%.2f)", sc.Name, sc.Level, sc.Score))
	}
	return "Your trait profile: " + strings.Join(parts, "; ") + "."
}

func recommendations() []string {
	return []string{
		"Reflect on situations where your strongest traits help you, and lean into them.",
		"Pick one lower-scoring area and try a small weekly habit that exercises it.",
		"Retake the assessment in a few months to see how your profile shifts.",
	}
}

func adjustedMean(records []models.ResponseRecord) float64 {
	if len(records) == 0 {
		return 3.0
	}
	sum := 0
	for _, r := range records {
		v := r.Response
		if r.ReverseScored {
			v = 6 - v
		}
		sum += v
	}
	return float64(sum) / float64(len(records))
}

func scoreLevel(pct float64) string {
	switch {
	case pct >= 75:
		return "high"
	case pct >= 50:
		return "medium"
	default:
		return "low"
	}
}

func dimensionLabel(dim models.Dimension) string {
	switch dim {
	case models.DimensionOpenness:
		return "Openness"
	case models.DimensionConscientiousness:
		return "Conscientiousness"
	case models.DimensionExtraversion:
		return "Extraversion"
	case models.DimensionAgreeableness:
		return "Agreeableness"
	case models.DimensionNeuroticism:
		return "Neuroticism"
	}
	return string(dim)
}

// calculateAgeGroup buckets a birth year into the cohorts the item provider
// and admin dashboard use. Unknown birth years map to "unknown".
func calculateAgeGroup(birthYear *int) string {
	if birthYear == nil {
		return "unknown"
	}
	age := time.Now().Year() - *birthYear
	switch {
	case age < 20:
		return "teen"
	case age < 30:
		return "young_adult"
	case age < 50:
		return "middle_age"
	default:
		return "senior"
	}
}

func progressPct(answered, max int) float64 {
	if max <= 0 {
		return 0
	}
	return roundTo(float64(answered)/float64(max)*100, 1)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
