package main

type sessionKey string

const visitorIDSessionKey = sessionKey("visitorID")
