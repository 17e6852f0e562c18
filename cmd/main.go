package main

import (
	"doctor-portal-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to start doctor portal: %v", err)
	}
	defer app.Close()

	app.Run()
}
