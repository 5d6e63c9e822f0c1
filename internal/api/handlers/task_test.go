package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mpatel/task-planner-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, method, url, token string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestTaskHandler_CRUDFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// Create a project to hang tasks off
	resp := doJSON(t, http.MethodPost, ts.APIURL("/projects"), token, map[string]string{
		"name":        "Week planning",
		"description": "Recurring weekly work",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var project struct {
		ID string `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &project)

	// Create a task due this week
	due := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	resp = doJSON(t, http.MethodPost, ts.APIURL("/tasks"), token, map[string]interface{}{
		"title":     "Prepare presentation",
		"dueDate":   due.Format(time.RFC3339),
		"priority":  1,
		"labels":    []string{"work"},
		"projectId": project.ID,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var task struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Status   string   `json:"status"`
		Priority int      `json:"priority"`
		Labels   []string `json:"labels"`
	}
	testutil.AssertJSONResponse(t, resp, &task)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, 1, task.Priority)
	assert.Equal(t, []string{"work"}, task.Labels)

	// The weekly calendar includes it
	weekURL := fmt.Sprintf("%s?start=%s", ts.APIURL("/tasks/week"), time.Now().UTC().Format(time.RFC3339))
	resp = doJSON(t, http.MethodGet, weekURL, token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var week []struct {
		ID string `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &week)
	require.Len(t, week, 1)
	assert.Equal(t, task.ID, week[0].ID)

	// Update status
	resp = doJSON(t, http.MethodPut, ts.APIURL("/tasks/"+task.ID), token, map[string]string{
		"status": "completed",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Status string `json:"status"`
	}
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.Equal(t, "completed", updated.Status)

	// Delete
	resp = doJSON(t, http.MethodDelete, ts.APIURL("/tasks/"+task.ID), token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, ts.APIURL("/tasks/"+task.ID), token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTaskHandler_CrossUserAccessDenied(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, strangerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	project := testutil.NewProjectBuilder(owner.ID).Build(t, ts.DB.DB)
	task := testutil.NewTaskBuilder(owner.ID, project.ID).Build(t, ts.DB.DB)

	// A stranger cannot see or touch the owner's resources.
	resp := doJSON(t, http.MethodGet, ts.APIURL("/projects/"+project.ID.String()), strangerToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, ts.APIURL("/tasks/"+task.ID.String()), strangerToken, map[string]string{
		"title": "hijacked",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The owner still can.
	resp = doJSON(t, http.MethodGet, ts.APIURL("/projects/"+project.ID.String()), ownerToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
