package main

// @title           Kirana Konnect API
// @version         1.0
// @description     Billing, customer ledger and inventory API for a single kirana shop

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1
