package logging

import (
	"context"
	"testing"

	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{}

	logger := ModuleLogger(provider, "pagecraft.documents")
	if len(provider.requested) != 1 || provider.requested[0] != "pagecraft.documents" {
		t.Fatalf("expected provider lookup by module name, got %v", provider.requested)
	}

	recording, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recording logger, got %T", logger)
	}
	if recording.fields["module"] != "pagecraft.documents" {
		t.Fatalf("expected module field, got %v", recording.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &recordingProvider{}

	ModuleLogger(provider, "")
	if len(provider.requested) != 1 || provider.requested[0] != "pagecraft" {
		t.Fatalf("expected root module lookup, got %v", provider.requested)
	}
}

func TestModuleLoggerWithoutProviderIsSafe(t *testing.T) {
	logger := ModuleLogger(nil, "pagecraft.blocks")
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Info("ignored", "key", "value")
}

func TestWithEditContextSkipsEmptyValues(t *testing.T) {
	base := &recordingLogger{}

	logger := WithEditContext(base, "hero", "", "ar")
	recording, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recording logger, got %T", logger)
	}
	if recording.fields["block_type"] != "hero" {
		t.Fatalf("expected block_type field, got %v", recording.fields)
	}
	if _, present := recording.fields["variant"]; present {
		t.Fatalf("expected variant to be omitted, got %v", recording.fields)
	}
	if recording.fields["locale"] != "ar" {
		t.Fatalf("expected locale field, got %v", recording.fields)
	}
}
