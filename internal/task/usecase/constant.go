package usecase

const (
	logPrefixCreate    = "internal.task.usecase.Create"
	logPrefixUpdate    = "internal.task.usecase.Update"
	logPrefixDelete    = "internal.task.usecase.Delete"
	logPrefixDeleteAll = "internal.task.usecase.DeleteAll"
)
