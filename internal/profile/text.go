package profile

var (
	AboutMe = `I like building software that is both useful and a little fun, and I am always
	curious about how things work behind the scenes. Most of my projects start with a small idea
	and turn into a chance to learn something new, whether that is a different language, a data
	set worth visualizing, or a tricky problem that needs a cleaner answer.`

	Tagline = `Software engineering and data science student building dashboards, games and
	web tools.`

	ContactBlurb = `Have a question or an opportunity in mind? Send a message and I will get back to you soon.`
)
