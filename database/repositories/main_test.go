package repositories_test

import (
	"flag"
	"os"
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/integrationtestutil"
	"github.com/Pranay-Bhilare/op-atlas/shared"
)

var testDB shared.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	var terminate func()
	testDB, terminate = integrationtestutil.InitDatabaseContainer()
	code := m.Run()
	terminate()
	os.Exit(code)
}
