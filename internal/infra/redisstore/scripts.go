package redisstore

import (
	_ "embed"

	"github.com/redis/go-redis/v9"
)

var (
	//go:embed scripts/admission.lua
	admissionSrc string
	//go:embed scripts/load_sale.lua
	loadSaleSrc string
	//go:embed scripts/unlock.lua
	unlockSrc string
	//go:embed scripts/next_count.lua
	nextCountSrc string
)

// Run uses EVALSHA and falls back to EVAL on NOSCRIPT.
var (
	admissionScript = redis.NewScript(admissionSrc)
	loadSaleScript  = redis.NewScript(loadSaleSrc)
	unlockScript    = redis.NewScript(unlockSrc)
	nextCountScript = redis.NewScript(nextCountSrc)
)
