package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits requests per client IP. rate uses the limiter format, e.g. "100-M".
// An invalid rate disables limiting.
func RateLimiter(rate string, log *logrus.Logger) gin.HandlerFunc {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		log.WithError(err).WithField("rate", rate).Warn("invalid rate limit, limiter disabled")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	store := memorystore.NewStoreWithOptions(limiter.StoreOptions{
		Prefix: "slot_booker",
	})

	return ginmiddleware.NewMiddleware(limiter.New(store, r))
}
