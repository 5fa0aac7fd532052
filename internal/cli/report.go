package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/Joesmod/rainmaker-dashboard/internal/pipeline"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	badColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
)

func printRunSummary(result *pipeline.RunResult) {
	headerColor.Println("Dashboard run")
	fmt.Printf("  date:        %s\n", result.Daily.Date)
	fmt.Printf("  mentions:    %d\n", result.Counts.Total)
	fmt.Printf("  sentiment:   ")
	goodColor.Printf("%d positive", result.Counts.Positive)
	fmt.Print(" / ")
	badColor.Printf("%d negative", result.Counts.Negative)
	fmt.Printf(" / %d neutral\n", result.Counts.Neutral)

	scoreColor := goodColor
	if result.Daily.Score < 50 {
		scoreColor = badColor
	}
	fmt.Printf("  brand score: ")
	scoreColor.Printf("%d\n", result.Daily.Score)

	if len(result.Alerts) > 0 {
		warnColor.Printf("  alerts:      %d new\n", len(result.Alerts))
		for _, alert := range result.Alerts {
			severity := warnColor
			if alert.Severity == domain.SeverityHigh {
				severity = badColor
			}
			fmt.Printf("    [%s] %s: %s\n", severity.Sprint(alert.Severity), alert.Post, alert.Reason)
		}
	} else {
		fmt.Println("  alerts:      none")
	}
}

func printPostsSummary(result *pipeline.PostsResult, verb string) {
	headerColor.Println("Posts run")
	count := result.Ingested
	if verb == "rescored" {
		count = len(result.State.RecentPosts)
	}
	fmt.Printf("  %s:     %d\n", verb, count)
	fmt.Printf("  total posts:  %d\n", len(result.State.RecentPosts))
	if len(result.State.RiskSignals) > 0 {
		warnColor.Printf("  risk signals: %v\n", result.State.RiskSignals)
	}
}
