package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/pacer/internal/models"
)

func TestGetProgressReturnsImplicitZeroForNewUser(t *testing.T) {
	app, _, verifier := newTestApp(t)
	verifier.grant("u-token", "subject-fresh", "")

	response := performRequest(t, app, http.MethodGet, "/api/progress", "u-token", nil)
	expectStatus(t, response, http.StatusOK)

	var progress models.UserProgress
	decodeJSONBody(t, response, &progress)
	if progress.TotalSessions != 0 || progress.TotalMinutes != 0 {
		t.Fatalf("expected zero progress, got {%d, %d}", progress.TotalSessions, progress.TotalMinutes)
	}
	if progress.LastSession != nil {
		t.Fatalf("expected no last_session, got %v", progress.LastSession)
	}
}

func TestProgressAccumulatesAcrossSessions(t *testing.T) {
	app, _, verifier := newTestApp(t)
	verifier.grant("u-token", "subject-accumulate", "")

	durations := []int{300, 125, 59}
	for _, duration := range durations {
		response := performRequest(t, app, http.MethodPost, "/api/sessions", "u-token", map[string]any{
			"duration_seconds": duration,
			"inhale_seconds":   4,
			"exhale_seconds":   6,
		})
		expectStatus(t, response, http.StatusCreated)
		response.Body.Close()
	}

	response := performRequest(t, app, http.MethodGet, "/api/progress", "u-token", nil)
	var progress models.UserProgress
	decodeJSONBody(t, response, &progress)

	// 300s -> 5m, 125s -> 2m, 59s -> 0m
	if progress.TotalSessions != 3 {
		t.Fatalf("expected total_sessions=3, got %d", progress.TotalSessions)
	}
	if progress.TotalMinutes != 7 {
		t.Fatalf("expected total_minutes=7, got %d", progress.TotalMinutes)
	}
}

func TestSummaryMatchesMaintainedProgressWhenNoDrift(t *testing.T) {
	app, _, verifier := newTestApp(t)
	verifier.grant("u-token", "subject-summary", "")

	response := performRequest(t, app, http.MethodPost, "/api/sessions", "u-token", map[string]any{
		"duration_seconds": 300, "inhale_seconds": 4, "exhale_seconds": 6,
	})
	expectStatus(t, response, http.StatusCreated)
	response.Body.Close()

	var maintained models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress", "u-token", nil), &maintained)

	var summary models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress/summary", "u-token", nil), &summary)

	if summary.TotalSessions != maintained.TotalSessions || summary.TotalMinutes != maintained.TotalMinutes {
		t.Fatalf("expected summary to match maintained progress, got %+v vs %+v", summary, maintained)
	}
}

func TestSummaryRecomputesFromSessionsEvenWhenMaintainedRowDrifted(t *testing.T) {
	app, database, verifier := newTestApp(t)
	verifier.grant("u-token", "subject-drift", "")

	response := performRequest(t, app, http.MethodPost, "/api/sessions", "u-token", map[string]any{
		"duration_seconds": 300, "inhale_seconds": 4, "exhale_seconds": 6,
	})
	expectStatus(t, response, http.StatusCreated)
	response.Body.Close()

	// Corrupt the maintained aggregate behind the recorder's back.
	if err := database.Model(&models.UserProgress{}).
		Where("total_sessions = ?", 1).
		Updates(map[string]any{"total_sessions": 99, "total_minutes": 999}).Error; err != nil {
		t.Fatalf("corrupt progress row: %v", err)
	}

	var summary models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress/summary", "u-token", nil), &summary)
	if summary.TotalSessions != 1 || summary.TotalMinutes != 5 {
		t.Fatalf("expected summary {1, 5} from true session set, got {%d, %d}", summary.TotalSessions, summary.TotalMinutes)
	}

	// The maintained view keeps reporting the drifted row; summary is the
	// reconciliation path, not a repair of it.
	var maintained models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress", "u-token", nil), &maintained)
	if maintained.TotalSessions != 99 {
		t.Fatalf("expected maintained row untouched by summary, got %d", maintained.TotalSessions)
	}
}

func TestSummaryReflectsSessionDeletionWhileMaintainedRowDoesNot(t *testing.T) {
	app, _, verifier := newTestApp(t)
	verifier.grant("u-token", "subject-del-drift", "")

	response := performRequest(t, app, http.MethodPost, "/api/sessions", "u-token", map[string]any{
		"duration_seconds": 300, "inhale_seconds": 4, "exhale_seconds": 6,
	})
	expectStatus(t, response, http.StatusCreated)
	var created sessionResponse
	decodeJSONBody(t, response, &created)

	deleteResponse := performRequest(t, app, http.MethodDelete, sessionPath(created.ID), "u-token", nil)
	expectStatus(t, deleteResponse, http.StatusNoContent)
	deleteResponse.Body.Close()

	var summary models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress/summary", "u-token", nil), &summary)
	if summary.TotalSessions != 0 || summary.TotalMinutes != 0 {
		t.Fatalf("expected summary {0, 0} after deletion, got {%d, %d}", summary.TotalSessions, summary.TotalMinutes)
	}
	if summary.LastSession != nil {
		t.Fatalf("expected no last_session in summary, got %v", summary.LastSession)
	}

	var maintained models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress", "u-token", nil), &maintained)
	if maintained.TotalSessions != 1 {
		t.Fatalf("expected maintained row to keep pre-deletion count, got %d", maintained.TotalSessions)
	}
}

func TestProgressIsScopedToCaller(t *testing.T) {
	app, _, verifier := newTestApp(t)
	verifier.grant("alice-token", "subject-alice-p", "")
	verifier.grant("bob-token", "subject-bob-p", "")

	response := performRequest(t, app, http.MethodPost, "/api/sessions", "alice-token", map[string]any{
		"duration_seconds": 300, "inhale_seconds": 4, "exhale_seconds": 6,
	})
	expectStatus(t, response, http.StatusCreated)
	response.Body.Close()

	var bobProgress models.UserProgress
	decodeJSONBody(t, performRequest(t, app, http.MethodGet, "/api/progress", "bob-token", nil), &bobProgress)
	if bobProgress.TotalSessions != 0 {
		t.Fatalf("expected bob's progress to be zero, got %d", bobProgress.TotalSessions)
	}
}
