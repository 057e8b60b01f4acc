package issue

import "crashvault/internal/model"

// --- UseCase Inputs ---

type ResolveInput struct {
	Message string
}

type ListIssuesInput struct {
	Status string // empty matches every status
}

type SetStatusInput struct {
	ID     int
	Status string
}

type SetTitleInput struct {
	ID    int
	Title string
}

// --- UseCase Outputs ---

type ResolveOutput struct {
	Issue   model.Issue
	Created bool
}

type ListIssuesOutput struct {
	Issues []model.Issue
	Total  int
}

type DetailIssueOutput struct {
	Issue model.Issue
}

type PurgeIssueOutput struct {
	RemovedEvents int
}
