package garden

import "time"

// TaskDateLayout is the due date format used by garden tasks
const TaskDateLayout = "2006-01-02"

// SuggestedTask is a seasonal task proposal
type SuggestedTask struct {
	Task    string `json:"task"`
	DueDate string `json:"due_date"`
}

type seasonalTask struct {
	task string
	days int
}

var (
	springTasks = []seasonalTask{
		{"Prepare garden beds", 7},
		{"Start seeds indoors", 14},
		{"Prune fruit trees", 21},
	}
	summerTasks = []seasonalTask{
		{"Water plants regularly", 1},
		{"Harvest vegetables", 7},
		{"Monitor for pests", 14},
	}
	fallTasks = []seasonalTask{
		{"Plant fall crops", 7},
		{"Collect seeds", 14},
		{"Prepare for frost", 21},
	}
	winterTasks = []seasonalTask{
		{"Plan next year's garden", 14},
		{"Maintain tools", 21},
		{"Order seeds", 28},
	}
)

// SuggestedTasks returns the tasks for the season containing now.
// Seasons: Mar-May spring, Jun-Aug summer, Sep-Nov fall, Dec-Feb winter.
func SuggestedTasks(now time.Time) []SuggestedTask {
	var tasks []seasonalTask
	switch m := now.Month(); {
	case m >= time.March && m <= time.May:
		tasks = springTasks
	case m >= time.June && m <= time.August:
		tasks = summerTasks
	case m >= time.September && m <= time.November:
		tasks = fallTasks
	default:
		tasks = winterTasks
	}

	out := make([]SuggestedTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, SuggestedTask{
			Task:    t.task,
			DueDate: now.AddDate(0, 0, t.days).Format(TaskDateLayout),
		})
	}
	return out
}
