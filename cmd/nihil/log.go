package main

import "github.com/nihil-go/nihil/debug"

var theLog = debug.Logger()
