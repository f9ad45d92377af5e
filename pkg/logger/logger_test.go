package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWithWriters(LevelWarn, &out, &errOut)

	log.Debug("descartado")
	log.Info("descartado")
	log.Warn("aviso", "orcamento_id", "o1")
	log.Error("falha", "error", errors.New("conexão recusada"))

	if strings.Contains(out.String(), "descartado") {
		t.Fatalf("expected debug and info to be filtered, got %q", out.String())
	}
	if !strings.Contains(out.String(), "WARN: ") || !strings.Contains(out.String(), "aviso orcamento_id=o1") {
		t.Fatalf("unexpected warn output %q", out.String())
	}
	if !strings.Contains(errOut.String(), `falha error="conexão recusada"`) {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestFormatPairs(t *testing.T) {
	if got := formatPairs([]interface{}{"a", 1, "b"}); got != " a=1 b=(MISSING)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := formatPairs(nil); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": LevelDebug, "WARN": LevelWarn, "error": LevelError, "": LevelInfo, "x": LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %d, got %d", in, want, got)
		}
	}
}
