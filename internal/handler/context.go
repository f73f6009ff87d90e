package handler

type ContextKey string

var PlanningCtx ContextKey = "planning"
