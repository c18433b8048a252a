package schedulers

import (
	"cmp"
	"log"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// ScheduleShortestRemainingTimeFirst is the preemptive variant of sjf: the
// ready process with the least remaining time always holds the cpu.
//
// Instead of stepping one time unit at a time, the running process keeps the
// cpu until the next arrival or its own completion. Between two arrivals the
// running process only gets shorter, so no other process can overtake it and
// the schedule matches a unit-step simulation.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) []core.Process {
	log.Println("running srtf algorithm ...")

	procs := core.CloneAll(processes)
	for i := range procs {
		procs[i].RemainingTime = procs[i].BurstTime
	}
	completed := make([]core.Process, 0, len(procs))

	currentTime := 0
	for len(completed) < len(procs) {
		next, arriving := nextArrival(procs, currentTime)

		i, ok := selectNext(procs, currentTime, byRemainingTime)
		if !ok {
			if !arriving {
				panic("srtf: no ready process and nothing left to arrive")
			}
			currentTime = next
			continue
		}

		p := &procs[i]
		slice := p.RemainingTime
		if arriving && next-currentTime < slice {
			// preemption point
			slice = next - currentTime
		}
		p.Execute(currentTime, currentTime+slice)
		p.RemainingTime -= slice
		currentTime += slice

		if p.RemainingTime == 0 {
			p.Finish(currentTime)
			log.Println("pid:", p.ID, "completed at", currentTime)
			completed = append(completed, *p)
		}
	}
	return completed
}

func byRemainingTime(a, b *core.Process, _ int) int {
	return cmp.Compare(a.RemainingTime, b.RemainingTime)
}
