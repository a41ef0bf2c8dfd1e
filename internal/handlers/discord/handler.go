package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
	gamesvc "github.com/KirkDiggler/board-bot-discord/internal/services/game"
)

const (
	commandTimeout = 15 * time.Second
	defaultLimit   = 10
)

// Handler turns channel messages into game service calls
type Handler struct {
	gameService    gamesvc.Service
	prefix         string
	defaultRuleset string
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	GameService    gamesvc.Service // Required
	Prefix         string          // Optional, defaults to "!"
	DefaultRuleset string          // Optional, used by "board new" without a ruleset
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.GameService == nil {
		panic("game service is required")
	}

	h := &Handler{
		gameService:    cfg.GameService,
		prefix:         cfg.Prefix,
		defaultRuleset: cfg.DefaultRuleset,
	}
	if h.prefix == "" {
		h.prefix = "!"
	}
	return h
}

// HandleMessageCreate is registered with the discordgo session
func (h *Handler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil {
		return
	}

	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	h.HandleMessage(ctx, s, botID, m.Message)
}

// HandleMessage routes one message. Messages from the bot itself are
// reported to the channel's game as echoes.
func (h *Handler) HandleMessage(ctx context.Context, sender MessageSender, botID string, m *discordgo.Message) {
	if m.Author == nil {
		return
	}
	if botID != "" && m.Author.ID == botID {
		h.gameService.Observe(m.ChannelID, m.Content)
		return
	}
	if m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, h.prefix) {
		return
	}
	fields := strings.Fields(content[len(h.prefix):])
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch {
	case name == "board":
		h.handleBoard(ctx, sender, m, args)
	case engine.IsCommand(name):
		h.handleGameCommand(ctx, sender, m, name, args)
	}
}

func (h *Handler) handleGameCommand(ctx context.Context, sender MessageSender, m *discordgo.Message, name string, args []string) {
	ok, err := h.gameService.Command(ctx, m.ChannelID, m.Author.ID, name, args...)
	if err != nil {
		if boarderr.IsNotFound(err) {
			h.reply(sender, m.ChannelID, fmt.Sprintf("There is no game in this channel. Start one with `%sboard new`.", h.prefix))
			return
		}
		h.replyError(sender, m.ChannelID, err)
		return
	}
	if !ok {
		log.Debugf("Ignored %s from %s in channel %s", name, m.Author.ID, m.ChannelID)
	}
}

func (h *Handler) handleBoard(ctx context.Context, sender MessageSender, m *discordgo.Message, args []string) {
	sub := "help"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
		args = args[1:]
	}

	switch sub {
	case "new", "create":
		h.handleNew(ctx, sender, m, args)
	case "join":
		if err := h.gameService.JoinGame(ctx, m.ChannelID, m.Author.ID, displayName(m)); err != nil {
			h.replyError(sender, m.ChannelID, err)
			return
		}
		h.reply(sender, m.ChannelID, fmt.Sprintf("%s joined the game.", displayName(m)))
	case "leave":
		if err := h.gameService.LeaveGame(ctx, m.ChannelID, m.Author.ID); err != nil {
			h.replyError(sender, m.ChannelID, err)
			return
		}
		h.reply(sender, m.ChannelID, fmt.Sprintf("%s left the game.", displayName(m)))
	case "start":
		if err := h.gameService.StartGame(ctx, m.ChannelID); err != nil {
			h.replyError(sender, m.ChannelID, err)
		}
	case "end", "stop":
		if err := h.gameService.EndGame(ctx, m.ChannelID); err != nil {
			h.replyError(sender, m.ChannelID, err)
		}
	case "status":
		h.handleStatus(ctx, sender, m)
	case "me":
		summary, err := h.gameService.PlayerSummary(ctx, m.ChannelID, m.Author.ID)
		if err != nil {
			h.replyError(sender, m.ChannelID, err)
			return
		}
		h.reply(sender, m.ChannelID, summary)
	case "map":
		h.handleMap(ctx, sender, m, args)
	case "top":
		h.handleTop(ctx, sender, m, args)
	case "recent":
		h.handleRecent(ctx, sender, m, args)
	case "rulesets":
		h.handleRulesets(sender, m)
	default:
		h.reply(sender, m.ChannelID, h.help())
	}
}

func (h *Handler) handleNew(ctx context.Context, sender MessageSender, m *discordgo.Message, args []string) {
	ruleset := h.defaultRuleset
	if len(args) > 0 {
		ruleset = strings.ToLower(args[0])
	}
	if ruleset == "" {
		h.reply(sender, m.ChannelID, fmt.Sprintf("Pick a ruleset: `%sboard new <ruleset>`. See `%sboard rulesets`.", h.prefix, h.prefix))
		return
	}

	info, err := h.gameService.CreateGame(ctx, &gamesvc.CreateGameInput{
		ChannelID:   m.ChannelID,
		Ruleset:     ruleset,
		CreatorID:   m.Author.ID,
		CreatorName: displayName(m),
	})
	if err != nil {
		h.replyError(sender, m.ChannelID, err)
		return
	}

	h.reply(sender, m.ChannelID, fmt.Sprintf(
		"%s opened a game of %s. Use `%sboard join` to take a seat and `%sboard start` when everyone is in.",
		displayName(m), info.Name, h.prefix, h.prefix))
}

func (h *Handler) handleStatus(ctx context.Context, sender MessageSender, m *discordgo.Message) {
	info, err := h.gameService.Status(ctx, m.ChannelID)
	if err != nil {
		h.replyError(sender, m.ChannelID, err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** (%s), %s", info.Name, info.Ruleset, info.State)
	for _, st := range info.Standings {
		fmt.Fprintf(&sb, "\n%s %s: %d, %d properties", st.Label, st.Name, st.Currency, st.Properties)
		if st.Eliminated {
			sb.WriteString(", eliminated")
		}
	}
	h.reply(sender, m.ChannelID, sb.String())
}

func (h *Handler) handleMap(ctx context.Context, sender MessageSender, m *discordgo.Message, args []string) {
	format := engine.FormatText
	lang := ""
	if len(args) > 0 && strings.EqualFold(args[0], "html") {
		format = engine.FormatHTML
		lang = "html"
	}

	out, err := h.gameService.RenderBoard(ctx, m.ChannelID, format)
	if err != nil {
		h.replyError(sender, m.ChannelID, err)
		return
	}
	h.reply(sender, m.ChannelID, fmt.Sprintf("```%s\n%s\n```", lang, out))
}

func (h *Handler) handleTop(ctx context.Context, sender MessageSender, m *discordgo.Message, args []string) {
	ruleset, limit := h.rulesetAndLimit(args)
	if ruleset == "" {
		h.reply(sender, m.ChannelID, fmt.Sprintf("Usage: `%sboard top <ruleset> [count]`", h.prefix))
		return
	}

	entries, err := h.gameService.Leaderboard(ctx, ruleset, limit)
	if err != nil {
		h.replyError(sender, m.ChannelID, err)
		return
	}
	if len(entries) == 0 {
		h.reply(sender, m.ChannelID, fmt.Sprintf("Nobody has won a game of %s yet.", ruleset))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Top players in %s**", ruleset)
	for i, e := range entries {
		wins := "wins"
		if e.Wins == 1 {
			wins = "win"
		}
		fmt.Fprintf(&sb, "\n%d. %s, %d %s", i+1, e.Name, e.Wins, wins)
	}
	h.reply(sender, m.ChannelID, sb.String())
}

func (h *Handler) handleRecent(ctx context.Context, sender MessageSender, m *discordgo.Message, args []string) {
	ruleset, limit := h.rulesetAndLimit(args)
	if ruleset == "" {
		h.reply(sender, m.ChannelID, fmt.Sprintf("Usage: `%sboard recent <ruleset> [count]`", h.prefix))
		return
	}

	recent, err := h.gameService.RecentResults(ctx, ruleset, limit)
	if err != nil {
		h.replyError(sender, m.ChannelID, err)
		return
	}
	if len(recent) == 0 {
		h.reply(sender, m.ChannelID, fmt.Sprintf("No finished games of %s yet.", ruleset))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Recent games of %s**", ruleset)
	for _, r := range recent {
		fmt.Fprintf(&sb, "\n%s: %s after %d rounds (%s)", r.EndedAt.Format("Jan 2 15:04"), winnerNames(r), r.Rounds, r.Reason)
	}
	h.reply(sender, m.ChannelID, sb.String())
}

func (h *Handler) handleRulesets(sender MessageSender, m *discordgo.Message) {
	defs := h.gameService.Rulesets()
	if len(defs) == 0 {
		h.reply(sender, m.ChannelID, "No rulesets are installed.")
		return
	}

	var sb strings.Builder
	sb.WriteString("**Rulesets**")
	for _, def := range defs {
		fmt.Fprintf(&sb, "\n`%s` %s: %s", def.Key, def.Name, def.Description)
	}
	h.reply(sender, m.ChannelID, sb.String())
}

func (h *Handler) rulesetAndLimit(args []string) (string, int) {
	ruleset := h.defaultRuleset
	limit := defaultLimit
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if n > 0 {
				limit = n
			}
			continue
		}
		ruleset = strings.ToLower(arg)
	}
	return ruleset, limit
}

func (h *Handler) help() string {
	p := h.prefix
	return strings.Join([]string{
		"**Board game commands**",
		fmt.Sprintf("`%sboard new <ruleset>` open a game in this channel", p),
		fmt.Sprintf("`%sboard join` / `%sboard leave` take or give up a seat", p, p),
		fmt.Sprintf("`%sboard start` / `%sboard end` start or stop the game", p, p),
		fmt.Sprintf("`%sboard status`, `%sboard me`, `%sboard map` show the game", p, p, p),
		fmt.Sprintf("`%sboard top <ruleset>`, `%sboard recent <ruleset>`, `%sboard rulesets`", p, p, p),
		fmt.Sprintf("In game: `%sroll`, `%sbuy`, `%spass`, `%sbid <amount>`, `%sescape`", p, p, p, p, p),
	}, "\n")
}

func (h *Handler) reply(sender MessageSender, channelID, text string) {
	if _, err := sender.ChannelMessageSend(channelID, text); err != nil {
		log.Printf("Failed to send message to channel %s: %v", channelID, err)
	}
}

// replyError shows user-facing errors as they are and hides the rest
func (h *Handler) replyError(sender MessageSender, channelID string, err error) {
	switch boarderr.GetCode(err) {
	case boarderr.CodeNotFound, boarderr.CodeAlreadyExists, boarderr.CodeFailedPrecondition, boarderr.CodeInvalidArgument:
		h.reply(sender, channelID, "❌ "+err.Error())
	default:
		log.Printf("Board command failed in channel %s: %v", channelID, err)
		h.reply(sender, channelID, "❌ Something went wrong, please try again.")
	}
}

func displayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

func winnerNames(r *engine.Result) string {
	names := make([]string, 0, len(r.Winners))
	for _, st := range r.Standings {
		if st.Winner {
			names = append(names, st.Name)
		}
	}
	if len(names) == 0 {
		return "no winner"
	}
	return strings.Join(names, " and ") + " won"
}
