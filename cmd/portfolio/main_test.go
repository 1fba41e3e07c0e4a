package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alexmorgan.design/internal/config"
	"alexmorgan.design/internal/services"
)

func TestGenerateWritesLoadableContent(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "portfolio.yml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", dir, "--config-file", "--config", cfgPath})
	require.NoError(t, rootCmd.Execute())
	t.Cleanup(func() { writeConfig = false; cfgFile = "portfolio.yml" })

	assert.Contains(t, out.String(), "Done!")

	content, err := services.NewContentStore(dir, nil)
	require.NoError(t, err)
	assert.Len(t, content.Portfolio().Items, len(seedPortfolio.Items))
	assert.Len(t, content.Testimonials().Testimonials, len(seedTestimonials.Testimonials))
	assert.Equal(t, "home", content.Site().Sections[0].ID)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataPath)
	assert.NoError(t, cfg.Validate())
}

func TestSeedCategoriesCoverItems(t *testing.T) {
	tags := map[string]bool{}
	for _, c := range seedPortfolio.Categories {
		tags[c.Tag] = true
	}
	for _, it := range seedPortfolio.Items {
		assert.True(t, tags[it.Category], "item %s has unknown category %s", it.ID, it.Category)
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := &http.Server{
		Addr: addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	}
	content := services.NewContentStoreFrom(nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, srv, content, time.Second, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
