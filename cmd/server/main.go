package main

import "studysimplifier/internal/app"

// @title           Study Simplifier API
// @version         1.0
// @description     Backend für das Study-Simplifier-Dashboard: Benutzer, Todos, Links und Benachrichtigungen.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
