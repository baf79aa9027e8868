package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xsll/lib/infra"
	"github.com/benz9527/xsll/lib/list"
	"github.com/benz9527/xsll/xlog"
)

const (
	envSeparator = "SLL_DEMO_SEP"
	envKind      = "SLL_DEMO_KIND"

	ctxFieldKind     = "kind"
	ctxFieldScenario = "scenario"
)

type demoConfig struct {
	separator string
	kinds     []list.ListKind
}

func loadDemoConfig() (*demoConfig, error) {
	cfg := &demoConfig{
		separator: list.DefaultSeparator,
		kinds:     []list.ListKind{list.Linear, list.Circular},
	}
	if sep := os.Getenv(envSeparator); len(sep) > 0 {
		cfg.separator = sep
	}
	switch kind := strings.ToLower(strings.TrimSpace(os.Getenv(envKind))); kind {
	case "", "all":
	case list.Linear.String():
		cfg.kinds = []list.ListKind{list.Linear}
	case list.Circular.String():
		cfg.kinds = []list.ListKind{list.Circular}
	default:
		return nil, infra.NewErrorStack("unknown " + envKind + " <" + kind + ">")
	}
	return cfg, nil
}

type reportFn func(op string, l list.SinglyLinkedList[int], fields ...zap.Field)

type scenario struct {
	name string
	run  func(l list.SinglyLinkedList[int], report reportFn) error
}

var scenarios = []scenario{
	{
		name: "append-pop",
		run: func(l list.SinglyLinkedList[int], report reportFn) error {
			l.Append(103)
			l.Append(20)
			l.Append(20)
			l.Append(134)
			report("append", l)
			e, err := l.Pop()
			if err != nil {
				return err
			}
			report("pop", l, zap.Int("popped", e.Value))
			return nil
		},
	},
	{
		name: "insert-into-empty",
		run: func(l list.SinglyLinkedList[int], report reportFn) error {
			if _, err := l.Insert(0, 78); err != nil {
				return err
			}
			report("insert", l, zap.Bool("selfLinked", l.Front() == l.Back()))
			return nil
		},
	},
	{
		name: "search",
		run: func(l list.SinglyLinkedList[int], report reportFn) error {
			l.AppendValue(103, 20, 20, 20)
			idx, ok := l.Search(19990)
			report("search", l, zap.Int("target", 19990), zap.Int64("index", idx), zap.Bool("found", ok))
			idx, ok = l.Search(20)
			report("search", l, zap.Int("target", 20), zap.Int64("index", idx), zap.Bool("found", ok))
			return nil
		},
	},
	{
		name: "remove-at",
		run: func(l list.SinglyLinkedList[int], report reportFn) error {
			l.AppendValue(1, 2, 3, 4, 5)
			var merr error
			_, err := l.RemoveAt(2)
			merr = multierr.Append(merr, err)
			_, err = l.RemoveAt(list.LastIndex)
			merr = multierr.Append(merr, err)
			_, err = l.Insert(1, 42)
			merr = multierr.Append(merr, err)
			if merr != nil {
				return merr
			}
			report("remove-insert", l)
			return nil
		},
	},
	{
		name: "invalid-index",
		run: func(l list.SinglyLinkedList[int], report reportFn) error {
			l.AppendValue(1, 2, 3)
			if _, err := l.Insert(10, 1); !errors.Is(err, list.ErrInvalidIndex) {
				return infra.NewErrorStack("insert out of range is accepted")
			}
			if err := l.SetValue(3, 1); !errors.Is(err, list.ErrInvalidIndex) {
				return infra.NewErrorStack("set value out of range is accepted")
			}
			report("rejected", l)
			return nil
		},
	},
}

func newDemoList(kind list.ListKind) list.SinglyLinkedList[int] {
	if kind == list.Circular {
		return list.NewCircularLinkedList[int]()
	}
	return list.NewSinglyLinkedList[int]()
}

// scenarioContext carries the list kind and the scenario name
// down to the context aware log entries.
func scenarioContext(kind list.ListKind, name string) context.Context {
	ctx := context.WithValue(context.Background(), xlog.ContextKey(ctxFieldKind), kind.String())
	return context.WithValue(ctx, xlog.ContextKey(ctxFieldScenario), name)
}

type demoReporter interface {
	report(ctx context.Context, op string, l list.SinglyLinkedList[int], fields ...zap.Field)
	fail(ctx context.Context, err error)
}

// runScenarios runs every scenario against a fresh list of each kind.
// A failed scenario does not stop the others, all errors are combined.
func runScenarios(cfg *demoConfig, r demoReporter) error {
	var merr error
	for _, kind := range cfg.kinds {
		for _, s := range scenarios {
			ctx := scenarioContext(kind, s.name)
			err := s.run(newDemoList(kind), func(op string, l list.SinglyLinkedList[int], fields ...zap.Field) {
				r.report(ctx, op, l, fields...)
			})
			if err != nil {
				err = infra.WrapErrorStackWithMessage(err, kind.String()+" "+s.name)
				r.fail(ctx, err)
				merr = multierr.Append(merr, err)
			}
		}
	}
	return merr
}

type logReporter struct {
	logger    xlog.XLogger
	separator string
}

func (r *logReporter) report(ctx context.Context, op string, l list.SinglyLinkedList[int], fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+2)
	newFields = append(newFields,
		zap.Int64("len", l.Len()),
		zap.String("list", l.Render(r.separator)),
	)
	r.logger.InfoContext(ctx, op, append(newFields, fields...)...)
}

func (r *logReporter) fail(ctx context.Context, err error) {
	r.logger.ErrorStackContext(ctx, err, "scenario failed")
}

type demoBanner struct{}

func (demoBanner) JSON() string {
	return `{"banner":"singly linked list demo"}`
}

func (demoBanner) PlainText() string {
	return "==== singly linked list demo ===="
}

func runDemo(logger xlog.XLogger, cfg *demoConfig) error {
	logger.Banner(demoBanner{})
	logger.Info("singly linked list demo",
		zap.Strings("kinds", lo.Map(cfg.kinds, func(kind list.ListKind, _ int) string {
			return kind.String()
		})),
		zap.String("separator", cfg.separator),
		zap.String("level", logger.Level()),
	)
	err := runScenarios(cfg, &logReporter{logger: logger, separator: cfg.separator})
	logger.Logf(zapcore.InfoLevel, "%d scenarios run over %d list kinds, %d failed",
		len(scenarios)*len(cfg.kinds), len(cfg.kinds), len(multierr.Errors(err)),
	)
	return err
}
