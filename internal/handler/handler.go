package handler

import (
	"sync"

	"wordy/internal/middleware"
	"wordy/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	authService   *service.AuthService
	puzzleService *service.PuzzleService
	statsService  *service.StatsService
	logger        *zap.Logger

	// guesses from one user are applied one at a time
	locks *userLocks
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	puzzleService *service.PuzzleService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		authService:   authService,
		puzzleService: puzzleService,
		statsService:  statsService,
		logger:        logger,
		locks:         newUserLocks(),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.RequestLogger(h.logger))

	// Password entry and guesses
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	game := h.bot.Group()
	game.Use(middleware.AuthMiddleware(h.authService, h.logger))

	// Commands
	game.Handle("/today", h.handleToday)
	game.Handle("/play", h.handlePlay)
	game.Handle("/past", h.handlePast)
	game.Handle("/stats", h.handleStats)
	game.Handle("/friends", h.handleFriends)
	game.Handle("/solve", h.handleSolve)
	game.Handle("/help", h.handleHelp)

	// Callback queries (inline buttons)
	game.Handle(&btnToday, h.handleToday)
	game.Handle(&btnPast, h.handlePast)
	game.Handle(&btnStats, h.handleStats)
	game.Handle(&btnFriends, h.handleFriends)
	game.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for buttons whose Unique did not survive
	game.Handle(tele.OnCallback, h.handleCallback)
}

// userLocks hands out one mutex per user. Entries are never evicted; the map
// is bounded by the authorized roster of an invite-only bot.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock blocks until userID's lock is held and returns its release func
func (l *userLocks) lock(userID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Inline keyboard buttons
var (
	btnToday = tele.Btn{
		Unique: "today",
		Text:   "🗓 Today's puzzle",
	}
	btnPast = tele.Btn{
		Unique: "past",
		Text:   "⏪ Catch up",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Statistics",
	}
	btnFriends = tele.Btn{
		Unique: "friends",
		Text:   "👥 Friends",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnToday, btnPast),
		menu.Row(btnStats, btnFriends),
	)
	return menu
}

// puzzleMarkup is shown under a board
func puzzleMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnFriends, btnStats),
		menu.Row(btnMainMenu),
	)
	return menu
}

// backMarkup returns a keyboard with only the main menu button
func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnMainMenu))
	return menu
}
