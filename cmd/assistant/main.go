package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flowboard/assistant/internal/assistant"
	"github.com/flowboard/assistant/internal/intent"
	"github.com/flowboard/assistant/internal/models"
	"github.com/flowboard/assistant/pkg/config"
	"go.uber.org/zap"
)

// consoleTasks and consoleNotifier are stand-in collaborators for the
// demo shell; a real deployment wires the application's own task and
// notification layers here.
type consoleTasks struct {
	logger *zap.Logger
}

func (t *consoleTasks) CreateTask(draft models.TaskDraft) error {
	t.logger.Info("Task created",
		zap.String("name", draft.Name),
		zap.String("priority", draft.Priority),
		zap.String("assignee", draft.Assignee))
	return nil
}

type consoleNotifier struct{}

func (consoleNotifier) Notify(n models.Notification) {
	fmt.Printf("[%s] %s\n", n.Kind, n.Message)
}

type staticIdentity struct {
	actor models.Actor
}

func (i staticIdentity) Current() models.Actor { return i.actor }

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize the intent extractor
	var extractor intent.Extractor
	if cfg.Extractor.UseGPT {
		logger.Info("Using GPT intent extractor")
		extractor = intent.NewGPTExtractor(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			logger,
		)
	} else {
		logger.Info("Using heuristic intent extractor")
		extractor = intent.NewHeuristicExtractor()
	}

	cached, err := intent.NewCachedExtractor(extractor, cfg.Extractor.CacheSize)
	if err != nil {
		logger.Fatal("Failed to create extractor cache", zap.Error(err))
	}

	engine := assistant.New(
		cached,
		&consoleTasks{logger: logger},
		consoleNotifier{},
		staticIdentity{actor: models.Actor{ID: "demo", Name: "Demo User", Initials: "DU"}},
		assistant.Config{
			ResponseDelay:   time.Duration(cfg.Assistant.ResponseDelayMs) * time.Millisecond,
			SuggestionDelay: time.Duration(cfg.Assistant.SuggestionDelayMs) * time.Millisecond,
			InsightDelay:    time.Duration(cfg.Assistant.InsightDelayMs) * time.Millisecond,
		},
		logger,
	)

	fmt.Println("Assistant ready. Type a message, or /help for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			handleCommand(engine, line)
			continue
		}

		turn, err := engine.Submit(context.Background(), line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(turn.Content)
		for i, action := range turn.Actions {
			fmt.Printf("  [%d] %s\n", i+1, action.Label)
		}
	}
}

func handleCommand(engine *assistant.Engine, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/help":
		fmt.Println(`Commands:
/suggestions        generate and list suggestions
/insights           generate and list insights
/analyze            summarize current workload
/history            show the conversation so far
/accept <id>        accept a suggestion
/dismiss <id>       dismiss a suggestion`)
	case "/suggestions":
		suggestions, err := engine.GenerateSuggestions(context.Background())
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		for _, s := range suggestions {
			fmt.Printf("%s  [%s, %d%%] %s\n", s.ID, s.Priority, s.Confidence, s.Title)
		}
	case "/insights":
		insights, err := engine.GenerateInsights(context.Background())
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		for _, in := range insights {
			fmt.Printf("[%s/%s] %s\n", in.Category, in.Impact, in.Title)
		}
	case "/analyze":
		report, err := engine.Analyze(context.Background())
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Println(report)
	case "/history":
		for _, turn := range engine.Conversation().History() {
			fmt.Printf("%s [%s]: %s\n", turn.Timestamp.Format("15:04:05"), turn.Speaker, turn.Content)
		}
	case "/accept":
		if len(fields) < 2 {
			fmt.Println("usage: /accept <id>")
			return
		}
		if err := engine.AcceptSuggestion(fields[1]); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	case "/dismiss":
		if len(fields) < 2 {
			fmt.Println("usage: /dismiss <id>")
			return
		}
		if err := engine.DismissSuggestion(fields[1]); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	default:
		fmt.Println("Unknown command. Use /help to see available commands.")
	}
}
