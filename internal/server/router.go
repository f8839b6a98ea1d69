package server

import (
	"net/http"
	"time"

	"auction-marketplace/internal/auth"
	auctionHandler "auction-marketplace/services/auctions/handler"
	biddingHandler "auction-marketplace/services/bidding/handler"
	describeHandler "auction-marketplace/services/describe/handler"
	notificationHandler "auction-marketplace/services/notifications/handler"
	paymentHandler "auction-marketplace/services/payments/handler"
	reviewHandler "auction-marketplace/services/reviews/handler"
	settlementHandler "auction-marketplace/services/settlement/handler"
	watchlistHandler "auction-marketplace/services/watchlist/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the router exposes over HTTP
type Dependencies struct {
	Auctions       auctionHandler.AuctionServiceInterface
	Bidding        biddingHandler.BiddingServiceInterface
	Settlement     settlementHandler.SettlementServiceInterface
	Watchlist      watchlistHandler.WatchlistServiceInterface
	Notifications  notificationHandler.NotificationServiceInterface
	Reviews        reviewHandler.ReviewServiceInterface
	Payments       paymentHandler.PaymentServiceInterface
	Describer      describeHandler.DescriberInterface
	Verifier       *auth.Verifier
	CronSecret     string
	AllowedOrigins []string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	session := deps.Verifier.Middleware()

	auctionsH := auctionHandler.NewAuctionHandler(deps.Auctions)
	biddingH := biddingHandler.NewBiddingHandler(deps.Bidding)
	settlementH := settlementHandler.NewSettlementHandler(deps.Settlement)
	watchlistH := watchlistHandler.NewWatchlistHandler(deps.Watchlist)
	notificationH := notificationHandler.NewNotificationHandler(deps.Notifications)
	reviewH := reviewHandler.NewReviewHandler(deps.Reviews)
	paymentH := paymentHandler.NewPaymentHandler(deps.Payments)
	describeH := describeHandler.NewDescribeHandler(deps.Describer)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionsH.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionsH.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingH.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", biddingH.GetWinningBidHandler)
		auctions.POST("", session, auctionsH.CreateAuctionHandler)
		auctions.POST("/:auction_id/publish", session, auctionsH.PublishAuctionHandler)
		auctions.POST("/:auction_id/cancel", session, auctionsH.CancelAuctionHandler)
	}

	bids := router.Group("/bids", session)
	{
		bids.POST("", biddingH.RecordBidHandler)
	}

	me := router.Group("/me", session)
	{
		me.GET("/bids", biddingH.MyBidsHandler)
		me.GET("/watchlist", watchlistH.ListHandler)
		me.POST("/watchlist", watchlistH.AddHandler)
		me.DELETE("/watchlist/:target_id", watchlistH.RemoveHandler)
		me.GET("/notifications", notificationH.ListHandler)
		me.POST("/notifications/read-all", notificationH.MarkAllReadHandler)
		me.POST("/notifications/:id/read", notificationH.MarkReadHandler)
	}

	router.POST("/reviews", session, reviewH.CreateReviewHandler)

	users := router.Group("/users")
	{
		users.GET("/:user_id/reviews", reviewH.ListReviewsHandler)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/setup-intent", session, paymentH.SetupIntentHandler)
		payments.POST("/payment-method", session, paymentH.SavePaymentMethodHandler)
		payments.POST("/webhook", paymentH.WebhookHandler)
	}

	router.POST("/ai/description", session, describeH.DescribeHandler)

	settlement := router.Group("/settlement", auth.CronSecretMiddleware(deps.CronSecret))
	{
		settlement.POST("/close", settlementH.CloseAuctionsHandler)
		settlement.POST("/charge", settlementH.ChargeWinnersHandler)
	}

	return router
}
