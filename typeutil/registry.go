package typeutil

import (
	"reflect"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit/tsync"
)

// classes maps type names to the Go types registered under them.
var classes = func() *tsync.Map[string, reflect.Type] {
	result := &tsync.Map[string, reflect.Type]{}
	for rt := range tagsByGoType {
		result.Store(rt.String(), rt)
	}
	return result
}()

// RegisterClass makes rt available to ClassForName, and therefore to parsing CLASS values, under the name
// rt.String(). It is safe to call concurrently. Registering a second, different type under a name already in use
// fails; registering the same type again is a no-op.
func RegisterClass(rt reflect.Type) error {
	if rt == nil {
		return xerrors.Errorf("cannot register nil class: %w", ErrNilValue)
	}
	name := rt.String()
	actual, loaded := classes.LoadOrStore(name, rt)
	if loaded && actual != rt {
		return xerrors.Errorf("class name %q is already registered to a different type", name)
	}
	if !loaded {
		log().Debug("registered class", zap.String("name", name))
	}
	return nil
}

// ClassForName returns the CLASS value registered under name.
func ClassForName(name string) (Class, error) {
	rt, ok := classes.Load(name)
	if !ok {
		return Class{}, conversionError(TypeString, TypeClass, name, xerrors.New("no class registered under this name"))
	}
	return ClassOf(rt), nil
}

// RegisteredClasses returns the names of every registered class in sorted order.
func RegisteredClasses() []string {
	var result []string
	classes.Range(func(name string, _ reflect.Type) bool {
		result = append(result, name)
		return true
	})
	sort.Strings(result)
	return result
}
