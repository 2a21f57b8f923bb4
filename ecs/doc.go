// Package ecs provides ECS adapters for seedling's stage sequencer.
//
// The primary adapter is [NewDonburiObserver], which bridges stage lifecycle
// events (started, awaiting input, finished, stalled) into a [Donburi] world
// as typed events. Subscribe to [StageEventType] in your ECS systems to react
// to the narrative, for example to trigger ambient effects per stage.
//
// Usage:
//
//	observer := ecs.NewDonburiObserver(world)
//	director.Sequencer.SetObserver(observer)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
