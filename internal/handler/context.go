package handler

type ContextKey string

var (
	ViewerCtxKey ContextKey = "viewer"
)
