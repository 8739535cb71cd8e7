package chain

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/core"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap"
)

// Clone branches the chain: the new chain gets its own copy of the subject
// and no extensions. Subjects implementing fluent.Cloner copy themselves;
// otherwise the copy is shallow, or deep (exported fields only) when the
// configuration enables deep cloning.
func (c *Chain) Clone() *Chain {
	cloned := &Chain{
		ctx:    c.ctx,
		id:     uuid.New(),
		cfg:    c.cfg,
		err:    c.err,
		result: c.result,
	}
	cloned.logger = core.LoggerFrom(c.ctx).With(zap.Stringer("chain_id", cloned.id))

	if c.subject == nil {
		return cloned
	}

	cloned.subject = copySubject(c.subject, c.cfg.EnableDeepCloning)
	if !fluent.IsSubject(cloned.subject) {
		return cloned.fail(fmt.Errorf("%w: clone of %s produced %s", fluent.ErrInvalidOperation,
			fluent.TypeName(c.subject), fluent.TypeName(cloned.subject)))
	}
	if sameReference(c.result, c.subject) {
		cloned.result = cloned.subject
	}

	cloned.logger.Debug("chain cloned", zap.Stringer("from", c.id))
	return cloned
}

func copySubject(subject any, deep bool) any {
	if cl, ok := subject.(fluent.Cloner); ok {
		return cl.CloneSubject()
	}
	if deep {
		return deepcopy.Copy(subject)
	}

	v := reflect.ValueOf(subject)
	if v.Kind() != reflect.Ptr {
		// struct values are copied on assignment
		return subject
	}
	cp := reflect.New(v.Elem().Type())
	cp.Elem().Set(v.Elem())
	return cp.Interface()
}

func sameReference(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	return va.Kind() == reflect.Ptr && vb.Kind() == reflect.Ptr &&
		va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}
