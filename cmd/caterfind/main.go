package main

import (
	"caterfind/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

// 启动：go run ./cmd/caterfind --config=config/local.yaml
func main() {
	egoApp := ego.New()
	app := ioc.InitApp()
	if err := egoApp.
		Serve(app.WebServer).
		Cron(app.Crons...).
		Run(); err != nil {
		elog.Panic("启动失败", elog.FieldErr(err))
	}
}
