package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/lojinha-control-api/pkg/logger"
)

// Claves de los listados cacheados.
const (
	KeyProducts   = "lojinha:products"
	KeyCategories = "lojinha:categories"
	KeyMovements  = "lojinha:stock-movements"
)

// snapshots lectura/escritura JSON con TTL; los errores del store solo se registran.
type snapshots struct {
	store Store
	ttl   time.Duration
	log   *logger.Logger
}

// load intenta leer key; si no está (o falla) llama a fetch y guarda el resultado.
func load[T any](ctx context.Context, s snapshots, key string, fetch func(context.Context) (T, error)) (T, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache: lectura fallida, se consulta la API")
	}
	if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.log.Debug().Str("key", key).Msg("cache: hit")
			return cached, nil
		}
		s.log.Warn().Str("key", key).Msg("cache: valor corrupto, se descarta")
	}

	fresh, err := fetch(ctx)
	if err != nil {
		return fresh, err
	}
	if raw, err := json.Marshal(fresh); err == nil {
		if err := s.store.Set(ctx, key, raw, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache: escritura fallida")
		}
	}
	return fresh, nil
}

func (s snapshots) invalidate(ctx context.Context, keys ...string) {
	if err := s.store.Delete(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("cache: invalidación fallida")
	}
}
