package services

import (
	"fmt"
	"sort"
	"strings"

	"f1-highlights-analytics/models"
	"f1-highlights-analytics/utils"
)

// drivers are the names counted for the "top driver" card. Mentions are
// matched case-insensitively against titles.
var drivers = []string{
	"Hamilton", "Verstappen", "Leclerc", "Norris",
	"Pérez", "Sainz", "Alonso", "Russell",
}

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the summary report over a set of records. Safe on
// an empty (or nil) input: everything stays zero.
func (s *InsightService) Generate(records []*models.VideoRecord) *models.SummaryReport {
	report := &models.SummaryReport{
		DriverMentions: make(map[string]int),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalVideos = len(records)

	var engagementSum float64
	for _, r := range records {
		report.TotalViews += r.ViewCount
		report.TotalLikes += r.LikeCount
		report.TotalComments += r.CommentCount
		engagementSum += r.EngagementRate

		if report.TopByViews == nil || r.ViewCount > report.TopByViews.ViewCount {
			report.TopByViews = r
		}
		if report.TopByEngagement == nil || r.EngagementRate > report.TopByEngagement.EngagementRate {
			report.TopByEngagement = r
		}
	}
	report.AvgEngagement = round4(engagementSum / float64(len(records)))

	for _, d := range drivers {
		count := 0
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.Title), strings.ToLower(d)) {
				count++
			}
		}
		if count > 0 {
			report.DriverMentions[d] = count
		}
		if count > report.TopDriverCount {
			report.TopDriver = d
			report.TopDriverCount = count
		}
	}

	return report
}

// Print writes the report to the terminal at the end of a collector run.
func (s *InsightService) Print(r *models.SummaryReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🏁 F1 HIGHLIGHTS COLLECTION REPORT\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Highlight videos collected : \033[1m%d\033[0m\n", r.TotalVideos)
	fmt.Printf("  Total views                : \033[1m%d\033[0m\n", r.TotalViews)
	fmt.Printf("  Total likes                : \033[1m%d\033[0m\n", r.TotalLikes)
	fmt.Printf("  Total comments             : \033[1m%d\033[0m\n", r.TotalComments)
	fmt.Printf("  Average engagement rate    : \033[1;32m%.2f%%\033[0m\n", r.AvgEngagement*100)
	fmt.Println()

	if r.TopByViews != nil {
		fmt.Printf("\033[1;33m  Most Viewed Highlight\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.TopByViews.Title, 50))
		fmt.Printf("  Views : \033[1;31m%d\033[0m\n", r.TopByViews.ViewCount)
		fmt.Println()
	}

	if r.TopByEngagement != nil {
		fmt.Printf("\033[1;33m  Highest Engagement\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.TopByEngagement.Title, 50))
		fmt.Printf("  Rate  : \033[1;32m%.2f%%\033[0m\n", r.TopByEngagement.EngagementRate*100)
		fmt.Println()
	}

	// Driver mentions
	fmt.Printf("\033[1;33m  Driver Mentions in Titles\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.DriverMentions) == 0 {
		fmt.Printf("  No driver mentions found\n")
	} else {
		type mention struct {
			driver string
			count  int
		}
		var ms []mention
		for d, c := range r.DriverMentions {
			ms = append(ms, mention{d, c})
		}
		sort.Slice(ms, func(i, j int) bool {
			return ms[i].count > ms[j].count
		})
		for _, m := range ms {
			bar := strings.Repeat("█", m.count)
			fmt.Printf("  %-14s %s (%d)\n", m.driver, bar, m.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round4(f float64) float64 {
	return float64(int(f*10000+0.5)) / 10000
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
