package component

type ActorTag struct{}

var ActorTagComponent = NewComponent[ActorTag]()
