package main

import (
	"flag"
	"fmt"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	finished bool

	summary game.Summary

	firstPointTick     int
	firstCollisionTick int
	leftPoints         int
	rightPoints        int
	cues               int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var lag int

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 60*60*30, "tick limit per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&lag, "lag", 8, "reaction lag of the left-paddle bot, in ticks")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if lag < 0 {
		fmt.Println("error: -lag must be >= 0")
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d lag=%d\n\n", runs, ticks, seedBase, seedStep, lag)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, ticks, lag)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runMatch plays the lagged bot against the tracking AI until one side wins
// or the tick limit is hit.
func runMatch(runIndex int, seed int64, ticks, lag int) runStats {
	tm := game.NewTestMatch(
		game.WithSeed(seed),
		game.WithBot(lag),
	)
	finished := tm.RunToEnd(ticks)
	return collectStats(runIndex, seed, finished, tm.Match.Summary(), tm.Log.Entries())
}

func collectStats(runIndex int, seed int64, finished bool, summary game.Summary, entries []game.MatchLogEntry) runStats {
	rs := runStats{
		runIndex:           runIndex,
		seed:               seed,
		finished:           finished,
		summary:            summary,
		firstPointTick:     firstTick(entries, "score", ""),
		firstCollisionTick: firstTick(entries, "collision", ""),
	}
	for _, e := range entries {
		switch e.Category {
		case "score":
			if e.Key == "left" {
				rs.leftPoints++
			} else {
				rs.rightPoints++
			}
		case "cue":
			rs.cues++
		}
	}
	return rs
}

// firstTick returns the tick of the first entry in category (and key, if
// non-empty), or -1.
func firstTick(entries []game.MatchLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		return e.Tick
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	winner := rs.summary.Winner()
	if !rs.finished {
		winner = "none"
	}
	fmt.Printf("result: finished=%t winner=%s score=%d-%d ticks=%d\n",
		rs.finished, winner, rs.summary.Score.Left, rs.summary.Score.Right, rs.summary.Ticks)
	fmt.Printf("rallies: collisions=%d longest=%d first_collision=%d first_point=%d\n",
		rs.summary.Collisions, rs.summary.LongestRally, rs.firstCollisionTick, rs.firstPointTick)
	fmt.Printf("points: left=%d right=%d cues=%d\n\n", rs.leftPoints, rs.rightPoints, rs.cues)
}

func printAggregate(all []runStats) {
	leftWins, rightWins, unfinished := winnerCounts(all)

	totalTicks := 0
	totalCollisions := 0
	longest := 0
	firstPoints := make([]int, 0, len(all))
	for _, rs := range all {
		totalTicks += rs.summary.Ticks
		totalCollisions += rs.summary.Collisions
		if rs.summary.LongestRally > longest {
			longest = rs.summary.LongestRally
		}
		firstPoints = append(firstPoints, rs.firstPointTick)
	}

	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("winners: left=%d right=%d unfinished=%d\n", leftWins, rightWins, unfinished)
	fmt.Printf("avg_per_run: ticks=%.1f collisions=%.1f\n", avg(totalTicks, len(all)), avg(totalCollisions, len(all)))
	fmt.Printf("longest_rally=%d first_point_avg_tick=%s\n", longest, avgTickString(firstPoints))
}

func winnerCounts(all []runStats) (left, right, unfinished int) {
	for _, rs := range all {
		if !rs.finished {
			unfinished++
			continue
		}
		switch rs.summary.Winner() {
		case "left":
			left++
		case "right":
			right++
		default:
			unfinished++
		}
	}
	return left, right, unfinished
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// avgTickString averages the non-negative ticks; -1 marks "never".
func avgTickString(vals []int) string {
	sum := 0
	n := 0
	for _, v := range vals {
		if v < 0 {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", avg(sum, n))
}
