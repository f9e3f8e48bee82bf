package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tempora-hq/everhour-go/pkg/everhour"
)

const usage = `usage: everhour <command>

commands:
  me                  show the account behind the API key
  timer               show the current timer
  timer start <task>  start the timer against a task
  timer stop          stop the running timer

The API key is read from EVERHOUR_API_KEY.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "everhour: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Println(usage)
		return nil
	}

	_ = godotenv.Load("configs/.env")

	client, err := everhour.NewClient(os.Getenv("EVERHOUR_API_KEY"), everhour.WithTimeout(15*time.Second))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "me":
		return showMe(ctx, client)
	case "timer":
		return runTimer(ctx, client, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage)
	}
}

func showMe(ctx context.Context, client *everhour.Client) error {
	me, err := client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (id %d, role %s)\n", me.Name, me.Email, me.ID, me.Role)
	return nil
}

func runTimer(ctx context.Context, client *everhour.Client, args []string) error {
	if len(args) == 0 {
		timer, err := client.CurrentTimer(ctx)
		if err != nil {
			return err
		}
		printTimer(timer)
		return nil
	}

	switch args[0] {
	case "start":
		if len(args) < 2 || strings.TrimSpace(args[1]) == "" {
			return fmt.Errorf("timer start requires a task id")
		}
		timer, err := client.StartTimer(ctx, &everhour.StartTimerRequest{Task: args[1]})
		if err != nil {
			return err
		}
		printTimer(timer)
		return nil
	case "stop":
		timer, err := client.StopTimer(ctx)
		if err != nil {
			return err
		}
		printTimer(timer)
		return nil
	default:
		return fmt.Errorf("unknown timer subcommand %q", args[0])
	}
}

func printTimer(timer *everhour.Timer) {
	if timer == nil {
		fmt.Println("no timer")
		return
	}
	switch timer.Status {
	case everhour.TimerStatusActive:
		task := ""
		if timer.Task != nil {
			task = fmt.Sprintf(" on %s (%s)", timer.Task.Name, timer.Task.ID)
		}
		fmt.Printf("running%s for %s, %s today\n", task, formatSeconds(timer.Duration), formatSeconds(timer.Today))
	default:
		fmt.Printf("stopped, %s today\n", formatSeconds(timer.Today))
	}
}

func formatSeconds(s int) string {
	d := time.Duration(s) * time.Second
	return d.String()
}
