package ioc

import (
	calendartask "caterfind/internal/service/calendar/task"
	"github.com/gotomicro/ego/task/ecron"
)

func Crons(cleanup *calendartask.CleanupCron) []ecron.Ecron {
	c1 := ecron.Load("cron.calendarCleanup").Build(ecron.WithJob(cleanup.Do))
	return []ecron.Ecron{c1}
}
