package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/alovak/cardform/api"
	"github.com/alovak/cardform/internal/config"
	"github.com/alovak/cardform/internal/middleware"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestApp_StartShutdown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HTTPAddr = "127.0.0.1:0"

	logs := &bytes.Buffer{}
	app := api.NewApp(slog.New(slog.NewJSONHandler(logs, nil)), cfg)
	require.NoError(t, app.Start())

	resp, err := http.Get("http://" + app.Addr + "/-/live")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, err = http.Post("http://"+app.Addr+"/cards/format", "application/json", bytes.NewBufferString(`{"card_number":"4242424242424242"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var formatted struct {
		Formatted string `json:"formatted"`
		Scheme    string `json:"scheme"`
	}
	require.NoError(t, json.Unmarshal(body, &formatted))
	require.Equal(t, "4242 4242 4242 4242", formatted.Formatted)
	require.Equal(t, "visa", formatted.Scheme)

	app.Shutdown()

	require.Contains(t, logs.String(), `"app":"cardform"`)
	require.Contains(t, logs.String(), `"path":"/cards/format"`)
}

func TestApp_StartFailsOnBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.ExpiryTZ = "Not/AZone"

	app := api.NewApp(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	require.Error(t, app.Start())

	cfg = config.DefaultConfig()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.SchemesFile = "testdata/missing.yaml"

	app = api.NewApp(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	require.Error(t, app.Start())
}
