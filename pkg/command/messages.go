package command

const (
	MessageInvalidPersonIndex = "The person index provided is invalid"
	MessageDuplicatePerson    = "This person already exists in the list"
	MessagePersonsListed      = "%d persons listed!"
)
