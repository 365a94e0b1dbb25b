// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/tlog"
	"github.com/lixenwraith/tlog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	cfg, err := tlog.NewConfigFromOverrides(
		"sink=rotate",
		"path=/var/log/gnet/gnet.log",
		"policy=dynamic:5000,100",
	)
	if err != nil {
		panic(err)
	}
	logger, err := tlog.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Quit()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
