package model

type App struct {
	Name string
	Tier Tier
}

type Link struct {
	Upstream   App
	Downstream App
}

type Pipeline struct {
	Base string
	Apps []App
}

func NewPipeline(prefix, base string) Pipeline {
	tiers := Tiers()
	apps := make([]App, 0, len(tiers))
	for _, tier := range tiers {
		apps = append(apps, App{Name: prefix + base + tier.Suffix, Tier: tier})
	}
	return Pipeline{Base: base, Apps: apps}
}

func (p Pipeline) App(id TierID) (App, bool) {
	for _, app := range p.Apps {
		if app.Tier.ID == id {
			return app, true
		}
	}
	return App{}, false
}

func (p Pipeline) Links() []Link {
	if len(p.Apps) < 2 {
		return nil
	}
	links := make([]Link, 0, len(p.Apps)-1)
	for i := 1; i < len(p.Apps); i++ {
		links = append(links, Link{Upstream: p.Apps[i-1], Downstream: p.Apps[i]})
	}
	return links
}
