package assessment

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/personality-cat/backend/internal/models"
)

func newTestEngine() *Engine {
	cfg := DefaultConfig()
	return NewEngine(cfg, NewSelector(cfg.Strategy, rand.New(rand.NewSource(7))))
}

func fullPools() map[models.Dimension][]models.Item {
	pools := make(map[models.Dimension][]models.Item)
	difficulties := []float64{-1.0, -0.5, 0.0, 0.5, 1.0, -1.0, -0.5, 0.0, 0.5, 1.0}
	for _, dim := range models.AllDimensions {
		for i, d := range difficulties {
			pools[dim] = append(pools[dim], models.Item{
				ID:             fmt.Sprintf("%s_%02d", dim, i+1),
				Dimension:      dim,
				Difficulty:     d,
				Discrimination: 1.4,
				ReverseScored:  i%4 == 3,
			})
		}
	}
	return pools
}

func TestNewSessionPriors(t *testing.T) {
	e := newTestEngine()
	sess := e.NewSession("s1", "Avery", models.Demographics{}, fullPools())

	if sess.Status != models.SessionActive {
		t.Errorf("status = %s, want active", sess.Status)
	}
	if sess.CurrentDimension != models.DimensionOpenness {
		t.Errorf("current dimension = %s, want openness", sess.CurrentDimension)
	}
	for _, dim := range models.AllDimensions {
		st := sess.State(dim)
		if st.Theta != 0.0 || st.SE != 1.0 {
			t.Errorf("%s prior = (%f, %f), want (0, 1)", dim, st.Theta, st.SE)
		}
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	e := newTestEngine()
	sess := e.NewSession("s1", "Avery", models.Demographics{}, fullPools())

	if _, err := e.SubmitAnswer(sess, "openness_01", 0); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("response 0: got %v, want ErrInvalidResponse", err)
	}
	if _, err := e.SubmitAnswer(sess, "openness_01", 6); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("response 6: got %v, want ErrInvalidResponse", err)
	}
	if _, err := e.SubmitAnswer(sess, "no_such_item", 3); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown item: got %v, want ErrItemNotFound", err)
	}
	// Items from a different dimension's pool are not addressable either.
	if _, err := e.SubmitAnswer(sess, "neuroticism_01", 3); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("cross-dimension item: got %v, want ErrItemNotFound", err)
	}

	// Failed submits leave the session untouched
	if sess.TotalAnswered != 0 || len(sess.State(models.DimensionOpenness).Responses) != 0 {
		t.Error("failed submits must not mutate the session")
	}
}

func TestSubmitAnswerDuplicate(t *testing.T) {
	e := newTestEngine()
	sess := e.NewSession("s1", "Avery", models.Demographics{}, fullPools())

	if _, err := e.SubmitAnswer(sess, "openness_03", 4); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := e.SubmitAnswer(sess, "openness_03", 2); !errors.Is(err, ErrItemAlreadyAnswered) {
		t.Errorf("duplicate submit: got %v, want ErrItemAlreadyAnswered", err)
	}
	if sess.TotalAnswered != 1 {
		t.Errorf("total answered = %d, want 1", sess.TotalAnswered)
	}
}

func TestSubmitAnswerUpdatesEstimate(t *testing.T) {
	e := newTestEngine()
	sess := e.NewSession("s1", "Avery", models.Demographics{}, fullPools())

	// Endorsing five non-reversed items should pull theta above zero.
	endorsed := []string{"openness_01", "openness_02", "openness_03", "openness_05", "openness_06"}
	for _, id := range endorsed {
		st, err := e.SubmitAnswer(sess, id, 5)
		if err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
		if st.SE <= 0 {
			t.Fatalf("SE after %s = %f, want >0", id, st.SE)
		}
	}

	st := sess.State(models.DimensionOpenness)
	if st.Theta <= 0 {
		t.Errorf("theta after five endorsements = %f, want >0", st.Theta)
	}
	if sess.TotalAnswered != 5 {
		t.Errorf("total answered = %d, want 5", sess.TotalAnswered)
	}
}

func TestNextItemAdvancesDimensions(t *testing.T) {
	e := newTestEngine()
	sess := e.NewSession("s1", "Avery", models.Demographics{}, fullPools())

	// Answer every item the engine serves in the first dimension.
	for i := 0; i < e.Config().MaxPerDimension; i++ {
		item, done := e.NextItem(sess)
		if done {
			t.Fatalf("session done after %d items", i)
		}
		if item.Dimension != models.DimensionOpenness {
			t.Fatalf("item %d from %s, want openness", i, item.Dimension)
		}
		if _, err := e.SubmitAnswer(sess, item.ID, 1+i%5); err != nil {
			t.Fatalf("submit %s: %v", item.ID, err)
		}
	}

	// The dimension is at its cap: the next item must come from the second
	// dimension.
	item, done := e.NextItem(sess)
	if done {
		t.Fatal("session done after one dimension")
	}
	if item.Dimension != models.DimensionConscientiousness {
		t.Errorf("next item from %s, want conscientiousness", item.Dimension)
	}
}

func TestFullSessionWalk(t *testing.T) {
	e := newTestEngine()
	sess := e.NewSession("s1", "Avery", models.Demographics{}, fullPools())

	answered := 0
	for {
		item, done := e.NextItem(sess)
		if done {
			break
		}
		if _, err := e.SubmitAnswer(sess, item.ID, 1+answered%5); err != nil {
			t.Fatalf("submit %s: %v", item.ID, err)
		}
		answered++
		if answered > 100 {
			t.Fatal("session never completed")
		}
	}

	if sess.Status != models.SessionCompleted {
		t.Errorf("status = %s, want completed", sess.Status)
	}
	if sess.TotalAnswered != answered {
		t.Errorf("total answered %d != submissions %d", sess.TotalAnswered, answered)
	}
	if sess.TotalAnswered > e.Config().MaxQuestions {
		t.Errorf("answered %d, cap is %d", sess.TotalAnswered, e.Config().MaxQuestions)
	}

	// Session-level sum must equal the per-dimension counts.
	sum := 0
	for _, dim := range models.AllDimensions {
		sum += sess.State(dim).Administered()
	}
	if sum != sess.TotalAnswered {
		t.Errorf("dimension counts sum to %d, total is %d", sum, sess.TotalAnswered)
	}

	// No further mutation allowed.
	if _, err := e.SubmitAnswer(sess, "openness_01", 3); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("submit after completion: got %v, want ErrSessionCompleted", err)
	}
	if _, done := e.NextItem(sess); !done {
		t.Error("NextItem on completed session should report done")
	}
}

func TestNextItemExhaustedPoolAdvances(t *testing.T) {
	e := newTestEngine()
	pools := fullPools()
	// Openness pool smaller than the per-dimension cap.
	pools[models.DimensionOpenness] = pools[models.DimensionOpenness][:3]
	sess := e.NewSession("s1", "Avery", models.Demographics{}, pools)

	for i := 0; i < 3; i++ {
		item, done := e.NextItem(sess)
		if done {
			t.Fatalf("done after %d items", i)
		}
		if _, err := e.SubmitAnswer(sess, item.ID, 3); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	item, done := e.NextItem(sess)
	if done {
		t.Fatal("session done after exhausting one small pool")
	}
	if item.Dimension != models.DimensionConscientiousness {
		t.Errorf("after exhaustion got %s, want conscientiousness", item.Dimension)
	}
}
