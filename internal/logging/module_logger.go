package logging

import (
	"context"
	"strings"

	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

const (
	rootModule        = "pagecraft"
	blocksModule      = "pagecraft.blocks"
	contentModule     = "pagecraft.content"
	collectionsModule = "pagecraft.collections"
	pagesModule       = "pagecraft.pages"
	documentsModule   = "pagecraft.documents"
)

const (
	fieldLocale    = "locale"
	fieldBlockType = "block_type"
	fieldVariant   = "variant"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// BlocksLogger returns the logger namespace reserved for the variant registry
// and resolver.
func BlocksLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blocksModule)
}

// ContentLogger returns the logger namespace reserved for the locale merge
// engine.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// CollectionsLogger returns the logger namespace reserved for collection item
// editing.
func CollectionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, collectionsModule)
}

// PagesLogger returns the logger namespace reserved for page resolution.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// DocumentsLogger returns the logger namespace reserved for content document
// persistence.
func DocumentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentsModule)
}

// WithEditContext enriches the provided logger with the common editing fields:
// block type, variant id, and active locale. Empty values are ignored.
func WithEditContext(logger interfaces.Logger, blockType, variant, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(blockType); trimmed != "" {
		fields[fieldBlockType] = trimmed
	}
	if trimmed := strings.TrimSpace(variant); trimmed != "" {
		fields[fieldVariant] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
