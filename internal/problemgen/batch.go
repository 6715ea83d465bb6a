package problemgen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// Request describes one problem of a worksheet.
type Request struct {
	SkillKey string
	Type     skillgraph.SkillType
	Level    int
	Range    skillgraph.Range
	Word     bool
}

// RequestForSkill builds a Request from a registry skill.
func RequestForSkill(s skillgraph.MicroSkill, level int) Request {
	return Request{SkillKey: s.Key, Type: s.Type, Level: level, Range: s.Range}
}

// GenerateBatch builds a worksheet concurrently. Every request gets its own
// generator seeded from seed and its index, so the output is reproducible
// regardless of scheduling. The returned slice is in request order.
func GenerateBatch(ctx context.Context, seed uint64, reqs []Request, opts ...Option) ([]*Problem, error) {
	out := make([]*Problem, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(8)

	for i, req := range reqs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := mathrand.New(seed + uint64(i))
			gen := NewGenerator(src, opts...)
			p, err := gen.Generate(req.Type, req.Level, req.Range)
			if err != nil {
				return err
			}
			p.SkillKey = req.SkillKey
			if req.Word {
				p = ToWordProblem(p, src)
			}
			out[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
