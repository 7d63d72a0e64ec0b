package availability

import (
	"context"
	"fmt"
	"sync"

	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"
)

type ResourceFinder interface {
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Resource, error)
}

// Resolver projects stored categories onto what can be booked right now. It
// never writes and never modifies the categories it is given.
type Resolver struct {
	finders map[model.ResourceKind]ResourceFinder
	log     *logger.Logger
}

func NewResolver(finders map[model.ResourceKind]ResourceFinder, log *logger.Logger) *Resolver {
	return &Resolver{finders: finders, log: log}
}

// Resolve keeps an option only when it is flagged available, its reference
// resolves, and the referenced resource is usable. Kept options carry the
// resource's current name and description. Categories whose options are all
// dropped are still returned, with an empty option list.
func (r *Resolver) Resolve(ctx context.Context, categories []*model.OptionCategory) ([]*model.OptionCategory, error) {
	resources, err := r.lookup(ctx, collectRefs(categories))
	if err != nil {
		return nil, err
	}

	resolved := make([]*model.OptionCategory, 0, len(categories))
	dropped := 0
	for _, category := range categories {
		out := *category
		out.Options = make([]model.Option, 0, len(category.Options))

		for _, opt := range category.Options {
			if !opt.IsAvailable {
				dropped++
				continue
			}
			res, ok := resources[opt.ItemModel][opt.ItemID]
			if !ok || !res.Usable() {
				dropped++
				continue
			}
			out.Options = append(out.Options, annotate(opt, res))
		}
		resolved = append(resolved, &out)
	}

	if dropped > 0 {
		r.log.Debug("Options filtered from resolved catalog", "dropped", dropped)
	}
	return resolved, nil
}

func collectRefs(categories []*model.OptionCategory) map[model.ResourceKind][]string {
	refs := make(map[model.ResourceKind][]string)
	for _, category := range categories {
		for _, opt := range category.Options {
			if !opt.IsAvailable || opt.ItemID == "" {
				continue
			}
			refs[opt.ItemModel] = append(refs[opt.ItemModel], opt.ItemID)
		}
	}
	return refs
}

// lookup runs one batched query per kind, concurrently. Kinds with no
// registered finder resolve nothing.
func (r *Resolver) lookup(ctx context.Context, refs map[model.ResourceKind][]string) (map[model.ResourceKind]map[string]model.Resource, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	resources := make(map[model.ResourceKind]map[string]model.Resource, len(refs))

	for kind, ids := range refs {
		finder, ok := r.finders[kind]
		if !ok {
			r.log.Warn("No resolver registered for item model", "item_model", kind, "options", len(ids))
			continue
		}

		wg.Add(1)
		go func(kind model.ResourceKind, finder ResourceFinder, ids []string) {
			defer wg.Done()
			found, err := finder.FindByIDs(ctx, ids)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to resolve %s references: %w", kind, err)
				}
				return
			}
			resources[kind] = found
		}(kind, finder, ids)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return resources, nil
}

func annotate(opt model.Option, res model.Resource) model.Option {
	if name := res.DisplayName(); name != "" {
		opt.Name = name
	}
	if desc := res.DisplayDescription(); desc != "" {
		opt.Description = desc
	}
	return opt
}
