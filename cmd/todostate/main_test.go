package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/nicolagi/todostate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const todoFile = `
- text: buy milk
  completed: true
- text: call mom
- text: book flights
  completed: true
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"todostate"}, args...))
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	noConfig := filepath.Join(t.TempDir(), "config.yaml")
	todos := writeFile(t, "todo.yaml", todoFile)

	out, err := run(t, "--config", noConfig, "--todos", todos, "list")
	require.NoError(t, err)
	assert.Equal(t, "0\tx\tbuy milk\n1\t\tcall mom\n2\tx\tbook flights\n", out)

	out, err = run(t, "--config", noConfig, "--todos", todos, "list", "--filter", "completed", "--sort")
	require.NoError(t, err)
	assert.Equal(t, "2\tx\tbook flights\n0\tx\tbuy milk\n", out)

	_, err = run(t, "--config", noConfig, "--todos", todos, "list", "--filter", "done")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	noConfig := filepath.Join(t.TempDir(), "config.yaml")
	out, err := run(t, "--config", noConfig, "--todos", writeFile(t, "todo.yaml", todoFile), "stats")
	require.NoError(t, err)
	assert.Equal(t, "Total: 3\nCompleted: 2\nUncompleted: 1\nPercent completed: 67%\n", out)

	out, err = run(t, "--config", noConfig, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Percent completed: 0%\n")
}

func TestWhoamiCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/5" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, `{"name":"Chelsey Dietrich"}`)
	}))
	defer server.Close()
	config := writeFile(t, "config.yaml", fmt.Sprintf("user_id: \"5\"\ndirectory:\n  endpoint: %s/users/\n", server.URL))

	out, err := run(t, "--config", config, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "5\tChelsey Dietrich\n", out)

	_, err = run(t, "--config", config, "whoami", "--user", "6")
	assert.ErrorIs(t, err, todostate.ErrStatusCode)
}
