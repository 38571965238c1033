package method

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"undex/internal/dalvik"
	"undex/internal/dexfmt"
)

// Decoded is one fully annotated method.
type Decoded struct {
	Method *Method
	Insts  []dalvik.Instruction
	Catch  map[uint32]bool
}

// Decode decodes and annotates one method against pool.
func Decode(m *Method, pool *Pool) (Decoded, error) {
	insts, err := dalvik.Decode(m.Insns)
	if err != nil {
		return Decoded{}, fmt.Errorf("%s: %w", m.Name, err)
	}
	catch := m.CatchSet()
	dalvik.AnnotateResultTypes(insts, catch, pool)
	dalvik.AnnotateImplicitCasts(insts)
	return Decoded{Method: m, Insts: insts, Catch: catch}, nil
}

// DecodeAll decodes every method of f concurrently. Results keep file order.
// In strict mode the first failure is returned; in best-effort mode failing
// methods are left out and reported as diagnostics.
func DecodeAll(ctx context.Context, f *File, opts dexfmt.Options) ([]Decoded, *dexfmt.Diags, error) {
	results := make([]Decoded, len(f.Methods))
	errs := make([]error, len(f.Methods))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.EffectiveWorkers())
	for i := range f.Methods {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Decode(&f.Methods[i], &f.Pool)
			if err != nil {
				if opts.Mode == dexfmt.ModeStrict {
					return err
				}
				errs[i] = err
				return nil
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("method: %w", err)
	}

	diags := &dexfmt.Diags{}
	out := make([]Decoded, 0, len(results))
	for i, err := range errs {
		if err == nil {
			out = append(out, results[i])
			continue
		}
		diag := dexfmt.Diag{Kind: dexfmt.DiagInvalid, Msg: err.Error(), Method: f.Methods[i].Name}
		var de *dexfmt.DecodeError
		if errors.As(err, &de) {
			diag.Offset = de.Offset
			diag.Kind = de.Kind
		}
		diags.AddDiag(diag)
	}
	return out, diags, nil
}
