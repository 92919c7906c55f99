package content

import "theinsight/internal/model"

// DefaultQuestions is the built-in question table used by cmd/seed and as a
// fallback when the questions collection is empty. Ids follow the bank's
// partition: 1-865 for M/O, 866-1715 for F.
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID: 1, Category: "WORKPLACE", TargetAgeMin: 10, TargetAgeMax: 99,
			Text: "A project at work suddenly changes direction. What is your first move?",
			Options: []model.Option{
				{Text: "Take charge and set the new course myself", Type: model.TypeD},
				{Text: "Rally the team and get everyone excited about the change", Type: model.TypeI},
				{Text: "Keep things calm and make sure nobody is left behind", Type: model.TypeS},
				{Text: "Re-read the requirements before touching anything", Type: model.TypeC},
			},
		},
		{
			ID: 2, Category: "SOCIAL", TargetAgeMin: 10, TargetAgeMax: 39,
			Text: "At a gathering where you know almost nobody, you usually...",
			Options: []model.Option{
				{Text: "Walk up to the most interesting-looking group and introduce myself", Type: model.TypeD},
				{Text: "End up at the center of a conversation without planning to", Type: model.TypeI},
				{Text: "Stay close to the one person I do know", Type: model.TypeS},
				{Text: "Observe the room for a while before joining in", Type: model.TypeC},
			},
		},
		{
			ID: 3, Category: "DECISION", TargetAgeMin: 20, TargetAgeMax: 59,
			Text: "You must pick between two job offers by tomorrow. How do you decide?",
			Options: []model.Option{
				{Text: "Go with my gut and commit immediately", Type: model.TypeD},
				{Text: "Call friends and talk it through out loud", Type: model.TypeI},
				{Text: "Choose the one that disrupts my life the least", Type: model.TypeS},
				{Text: "Build a spreadsheet comparing every factor", Type: model.TypeC},
			},
		},
		{
			ID: 4, Category: "STRESS", TargetAgeMin: 10, TargetAgeMax: 99,
			Text: "Under heavy pressure, your instinct is to...",
			Options: []model.Option{
				{Text: "Push harder and power through", Type: model.TypeD},
				{Text: "Vent to someone and reset my mood", Type: model.TypeI},
				{Text: "Slow down and stick to my routine", Type: model.TypeS},
				{Text: "Make a list and work it in order", Type: model.TypeC},
			},
		},
		{
			ID: 5, Category: "CONFLICT", TargetAgeMin: 20, TargetAgeMax: 99,
			Text: "A close friend strongly disagrees with a choice you made. You...",
			Options: []model.Option{
				{Text: "Defend my position directly, point by point", Type: model.TypeD},
				{Text: "Smooth it over with humor and warmth", Type: model.TypeI},
				{Text: "Listen fully, even if it takes all evening", Type: model.TypeS},
				{Text: "Lay out the reasoning that led me there", Type: model.TypeC},
			},
		},
		{
			ID: 6, Category: "WORKPLACE", TargetAgeMin: 20, TargetAgeMax: 49,
			Text: "Your ideal role on a new team is...",
			Options: []model.Option{
				{Text: "The one making the final calls", Type: model.TypeD},
				{Text: "The one keeping energy and morale up", Type: model.TypeI},
				{Text: "The reliable one everyone can lean on", Type: model.TypeS},
				{Text: "The one guarding quality and detail", Type: model.TypeC},
			},
		},
		{
			ID: 7, Category: "LEISURE", TargetAgeMin: 10, TargetAgeMax: 29,
			Text: "A free weekend appears out of nowhere. You spend it...",
			Options: []model.Option{
				{Text: "Tackling a goal I have been meaning to crush", Type: model.TypeD},
				{Text: "Getting people together on short notice", Type: model.TypeI},
				{Text: "Recharging quietly at home", Type: model.TypeS},
				{Text: "Finally organizing the things I have postponed", Type: model.TypeC},
			},
		},
		{
			ID: 8, Category: "DECISION", TargetAgeMin: 30, TargetAgeMax: 99,
			Text: "When buying something expensive, you...",
			Options: []model.Option{
				{Text: "Decide fast; hesitation costs more than mistakes", Type: model.TypeD},
				{Text: "Ask around for what others love", Type: model.TypeI},
				{Text: "Stay with brands that have never let me down", Type: model.TypeS},
				{Text: "Compare specifications until I am certain", Type: model.TypeC},
			},
		},
		{
			ID: 9, Category: "SOCIAL", TargetAgeMin: 40, TargetAgeMax: 99,
			Text: "In a long meeting that is going in circles, you...",
			Options: []model.Option{
				{Text: "Cut in and force a decision", Type: model.TypeD},
				{Text: "Lighten the room so people re-engage", Type: model.TypeI},
				{Text: "Wait patiently for consensus to form", Type: model.TypeS},
				{Text: "Summarize the facts on the table so far", Type: model.TypeC},
			},
		},
		{
			ID: 10, Category: "STRESS", TargetAgeMin: 10, TargetAgeMax: 49,
			Text: "You receive blunt criticism of your work. Your honest reaction is...",
			Options: []model.Option{
				{Text: "Challenge it if I think it is wrong", Type: model.TypeD},
				{Text: "Feel stung, then win the critic over", Type: model.TypeI},
				{Text: "Take it quietly and mull it over for days", Type: model.TypeS},
				{Text: "Check each point against the evidence", Type: model.TypeC},
			},
		},
		{
			ID: 11, Category: "WORKPLACE", TargetAgeMin: 50, TargetAgeMax: 99,
			Text: "Looking back at your career, what mattered most?",
			Options: []model.Option{
				{Text: "The results I delivered", Type: model.TypeD},
				{Text: "The people I brought along", Type: model.TypeI},
				{Text: "The trust I built over time", Type: model.TypeS},
				{Text: "The standard of work I kept", Type: model.TypeC},
			},
		},
		{
			ID: 12, Category: "LEISURE", TargetAgeMin: 20, TargetAgeMax: 69,
			Text: "Planning a trip with others, you naturally become...",
			Options: []model.Option{
				{Text: "The one who picks the destination and books it", Type: model.TypeD},
				{Text: "The one who talks everyone into coming", Type: model.TypeI},
				{Text: "The flexible one happy with any plan", Type: model.TypeS},
				{Text: "The one with the itinerary and backup options", Type: model.TypeC},
			},
		},
		{
			ID: 866, Category: "WORKPLACE", TargetAgeMin: 10, TargetAgeMax: 99,
			Text: "A deadline moves up by a week. What do you do first?",
			Options: []model.Option{
				{Text: "Re-prioritize everything and drive the new plan", Type: model.TypeD},
				{Text: "Get the team together and talk through how we feel about it", Type: model.TypeI},
				{Text: "Absorb the pressure and keep my steady pace", Type: model.TypeS},
				{Text: "Recalculate what is actually achievable", Type: model.TypeC},
			},
		},
		{
			ID: 867, Category: "SOCIAL", TargetAgeMin: 10, TargetAgeMax: 39,
			Text: "A friend cancels plans at the last minute. You...",
			Options: []model.Option{
				{Text: "Make new plans immediately; the day is not wasted", Type: model.TypeD},
				{Text: "Message three other people to see who is free", Type: model.TypeI},
				{Text: "Feel a little relieved to have the evening back", Type: model.TypeS},
				{Text: "Wonder what pattern these cancellations form", Type: model.TypeC},
			},
		},
		{
			ID: 868, Category: "DECISION", TargetAgeMin: 20, TargetAgeMax: 59,
			Text: "Choosing where to live next, the deciding factor is...",
			Options: []model.Option{
				{Text: "Whichever option moves my life forward fastest", Type: model.TypeD},
				{Text: "Being near the people who energize me", Type: model.TypeI},
				{Text: "Familiarity and a sense of safety", Type: model.TypeS},
				{Text: "The numbers: cost, commute, resale", Type: model.TypeC},
			},
		},
		{
			ID: 869, Category: "STRESS", TargetAgeMin: 10, TargetAgeMax: 99,
			Text: "When everything goes wrong at once, people around you see...",
			Options: []model.Option{
				{Text: "Someone who gets sharper and more decisive", Type: model.TypeD},
				{Text: "Someone who keeps spirits up regardless", Type: model.TypeI},
				{Text: "Someone calm on the surface, whatever is underneath", Type: model.TypeS},
				{Text: "Someone quietly triaging the chaos into order", Type: model.TypeC},
			},
		},
		{
			ID: 870, Category: "CONFLICT", TargetAgeMin: 20, TargetAgeMax: 99,
			Text: "Two people you care about are in a feud. You...",
			Options: []model.Option{
				{Text: "Sit them down and settle it tonight", Type: model.TypeD},
				{Text: "Charm both sides toward the middle", Type: model.TypeI},
				{Text: "Support each privately without taking sides", Type: model.TypeS},
				{Text: "Stay out of it unless asked for my view", Type: model.TypeC},
			},
		},
		{
			ID: 871, Category: "WORKPLACE", TargetAgeMin: 20, TargetAgeMax: 49,
			Text: "The best compliment a colleague could give you is...",
			Options: []model.Option{
				{Text: "\"You make things happen\"", Type: model.TypeD},
				{Text: "\"You make work fun\"", Type: model.TypeI},
				{Text: "\"You are the person I trust most here\"", Type: model.TypeS},
				{Text: "\"Your work never needs checking\"", Type: model.TypeC},
			},
		},
		{
			ID: 872, Category: "LEISURE", TargetAgeMin: 10, TargetAgeMax: 29,
			Text: "Trying a brand-new hobby, your style is...",
			Options: []model.Option{
				{Text: "Jump in at full intensity from day one", Type: model.TypeD},
				{Text: "Join a group so it is social from the start", Type: model.TypeI},
				{Text: "Ease in slowly and see if it sticks", Type: model.TypeS},
				{Text: "Research gear and technique before starting", Type: model.TypeC},
			},
		},
		{
			ID: 873, Category: "DECISION", TargetAgeMin: 30, TargetAgeMax: 99,
			Text: "A once-in-a-lifetime opportunity carries real risk. You...",
			Options: []model.Option{
				{Text: "Take it; regret scares me more than failure", Type: model.TypeD},
				{Text: "Take it if someone I trust comes along", Type: model.TypeI},
				{Text: "Pass unless the risk to my stability is small", Type: model.TypeS},
				{Text: "Model the downside before deciding anything", Type: model.TypeC},
			},
		},
		{
			ID: 874, Category: "SOCIAL", TargetAgeMin: 40, TargetAgeMax: 99,
			Text: "Among long-time friends, your unofficial role is...",
			Options: []model.Option{
				{Text: "The one who organizes and decides", Type: model.TypeD},
				{Text: "The storyteller who keeps the table laughing", Type: model.TypeI},
				{Text: "The listener people call first", Type: model.TypeS},
				{Text: "The one who remembers every detail and date", Type: model.TypeC},
			},
		},
		{
			ID: 875, Category: "STRESS", TargetAgeMin: 10, TargetAgeMax: 49,
			Text: "The night before a big test or presentation, you...",
			Options: []model.Option{
				{Text: "Sleep fine; I perform under pressure", Type: model.TypeD},
				{Text: "Talk through my nerves with someone", Type: model.TypeI},
				{Text: "Follow my usual evening exactly to stay settled", Type: model.TypeS},
				{Text: "Run through the material one more time", Type: model.TypeC},
			},
		},
		{
			ID: 876, Category: "WORKPLACE", TargetAgeMin: 50, TargetAgeMax: 99,
			Text: "Mentoring someone younger, you most want to pass on...",
			Options: []model.Option{
				{Text: "The courage to decide without permission", Type: model.TypeD},
				{Text: "The habit of building genuine connections", Type: model.TypeI},
				{Text: "The patience to let things mature", Type: model.TypeS},
				{Text: "The discipline of getting details right", Type: model.TypeC},
			},
		},
		{
			ID: 877, Category: "LEISURE", TargetAgeMin: 20, TargetAgeMax: 69,
			Text: "Your bookshelf or watch history leans toward...",
			Options: []model.Option{
				{Text: "Biographies of people who built things", Type: model.TypeD},
				{Text: "Anything I can talk about with friends after", Type: model.TypeI},
				{Text: "Comfort favorites I happily revisit", Type: model.TypeS},
				{Text: "Deep dives that explain how things work", Type: model.TypeC},
			},
		},
	}
}

// DefaultResults is the built-in narrative table: one entry per dominant
// profile and one per two-trait blend. The first entry doubles as the
// terminal fallback of the lookup cascade.
func DefaultResults() []model.ResultContent {
	return []model.ResultContent{
		{
			TypeKey: "High D", BaseName: "The Commander", Color: "#ff2e4d",
			Titles:    []string{"Pure Drive", "Born Decider"},
			Summaries: []string{"You move first and apologize never. Obstacles read to you as instructions, and rooms reorganize around your momentum."},
			AdviceList: []string{
				"Let one decision per day be someone else's.",
				"Slow ten percent; your pace loses people who matter.",
				"Ask a question before issuing a conclusion.",
			},
			LuckyItems:       []string{"Red notebook", "Analog watch", "Black coffee"},
			FamousPeoplePool: []string{"Winston Churchill", "Serena Williams", "Gordon Ramsay", "Margaret Thatcher"},
		},
		{
			TypeKey: "High I", BaseName: "The Spark", Color: "#ffb02e",
			Titles:    []string{"Pure Charisma", "Crowd Current"},
			Summaries: []string{"Energy enters the room when you do. You think out loud, decide with people, and turn strangers into allies in minutes."},
			AdviceList: []string{
				"Finish one thing before starting three.",
				"Write the promise down the moment you make it.",
				"Protect quiet hours; your battery is social but not infinite.",
			},
			LuckyItems:       []string{"Orange scarf", "Voice recorder", "Concert tickets"},
			FamousPeoplePool: []string{"Robin Williams", "Oprah Winfrey", "Ryan Reynolds", "Dolly Parton"},
		},
		{
			TypeKey: "High S", BaseName: "The Anchor", Color: "#2ecc71",
			Titles:    []string{"Pure Steadiness", "Quiet Keel"},
			Summaries: []string{"You are the constant others calibrate against. Storms pass; you remain, patient and unhurried, holding the room together."},
			AdviceList: []string{
				"Say no out loud at least once a week.",
				"Change is a skill; practice it in small doses.",
				"Your comfort zone is a home, not a cage. Leave the door open.",
			},
			LuckyItems:       []string{"Green mug", "Wool blanket", "Garden plant"},
			FamousPeoplePool: []string{"Mister Rogers", "Keanu Reeves", "Jane Goodall", "Tom Hanks"},
		},
		{
			TypeKey: "High C", BaseName: "The Architect", Color: "#2e9bff",
			Titles:    []string{"Pure Precision", "System Mind"},
			Summaries: []string{"You trust evidence over enthusiasm. Where others see a mess, you see an unfinished structure waiting for its missing rules."},
			AdviceList: []string{
				"Ship at ninety percent; the last ten is often vanity.",
				"Feelings are data too. Log them.",
				"Explain your standards before enforcing them.",
			},
			LuckyItems:       []string{"Blue fountain pen", "Mechanical keyboard", "Graph paper"},
			FamousPeoplePool: []string{"Marie Curie", "Alan Turing", "Hermione Granger", "Bill Gates"},
		},
		{
			TypeKey: "DI", BaseName: "The Trailblazer", Color: "#ff5e2e",
			Titles:    []string{"Magnetic Force"},
			Summaries: []string{"You lead from the front and make the march feel like a parade. Vision plus volume: people follow because it looks fun to."},
			AdviceList: []string{
				"Check whether the crowd behind you agreed to the destination.",
				"Delegate the follow-through you find boring.",
			},
			LuckyItems:       []string{"Sunglasses", "Travel pass"},
			FamousPeoplePool: []string{"Richard Branson", "Muhammad Ali", "Lady Gaga"},
		},
		{
			TypeKey: "DS", BaseName: "The Quiet Captain", Color: "#c0392b",
			Titles:    []string{"Steady Command"},
			Summaries: []string{"You decide firmly but carry people gently. Authority without noise; the team feels led, not driven."},
			AdviceList: []string{
				"Name your intentions; calm can read as distance.",
				"Let urgency show when it is real.",
			},
			LuckyItems:       []string{"Leather journal", "Compass"},
			FamousPeoplePool: []string{"Angela Merkel", "Tim Duncan"},
		},
		{
			TypeKey: "DC", BaseName: "The Strategist", Color: "#8e44ad",
			Titles:    []string{"Calculated Power"},
			Summaries: []string{"You pair will with blueprint. Every bold move you make was checked twice before anyone saw it."},
			AdviceList: []string{
				"Share the draft, not just the verdict.",
				"Perfection delays victories you already earned.",
			},
			LuckyItems:       []string{"Chess piece", "Dark chocolate"},
			FamousPeoplePool: []string{"Steve Jobs", "Katharine Hepburn"},
		},
		{
			TypeKey: "ID", BaseName: "The Showrunner", Color: "#ff942e",
			Titles:    []string{"Charismatic Drive"},
			Summaries: []string{"You sell the dream and then, to everyone's surprise, deliver it. Warmth first, force a close second."},
			AdviceList: []string{
				"Guard against promising in the heat of applause.",
				"Recruit a detail person early.",
			},
			LuckyItems:       []string{"Gold pin", "Open-top car ride"},
			FamousPeoplePool: []string{"Will Smith", "Tina Fey"},
		},
		{
			TypeKey: "IS", BaseName: "The Host", Color: "#f1c40f",
			Titles:    []string{"Warm Welcome"},
			Summaries: []string{"People relax around you on purpose; you built it that way. You connect the room and then keep it connected."},
			AdviceList: []string{
				"Conflict avoided is only conflict postponed.",
				"Your needs belong on the agenda too.",
			},
			LuckyItems:       []string{"Candles", "Shared playlist"},
			FamousPeoplePool: []string{"Ellen DeGeneres", "Paddington Bear"},
		},
		{
			TypeKey: "IC", BaseName: "The Storycrafter", Color: "#e67e22",
			Titles:    []string{"Polished Charm"},
			Summaries: []string{"You make precision entertaining. Facts arrive dressed for the occasion, and audiences remember both the joke and the point."},
			AdviceList: []string{
				"Not every insight needs a performance.",
				"Let rough drafts be seen.",
			},
			LuckyItems:       []string{"Fountain pen", "Cinema ticket"},
			FamousPeoplePool: []string{"Lin-Manuel Miranda", "Carl Sagan"},
		},
		{
			TypeKey: "SD", BaseName: "The Foundation", Color: "#27ae60",
			Titles:    []string{"Grounded Strength"},
			Summaries: []string{"Slow to move, impossible to push. When you finally commit, the commitment carries the weight of bedrock."},
			AdviceList: []string{
				"Decide a day earlier than feels comfortable.",
				"Tell people what you are protecting; they may help.",
			},
			LuckyItems:       []string{"Stone paperweight", "Hiking boots"},
			FamousPeoplePool: []string{"Samwise Gamgee", "Toni Morrison"},
		},
		{
			TypeKey: "SI", BaseName: "The Companion", Color: "#58d68d",
			Titles:    []string{"Gentle Glow"},
			Summaries: []string{"Loyal first, lively second. You keep old friendships in mint condition and make new people feel like old friends."},
			AdviceList: []string{
				"Being needed is not the same as being well.",
				"Try going first once in a while.",
			},
			LuckyItems:       []string{"Photo album", "Herbal tea"},
			FamousPeoplePool: []string{"Ron Weasley", "Dolly the sheep"},
		},
		{
			TypeKey: "SC", BaseName: "The Caretaker", Color: "#16a085",
			Titles:    []string{"Patient Precision"},
			Summaries: []string{"You maintain what others merely start. Systems, gardens, friendships: all thrive under your consistent, careful hand."},
			AdviceList: []string{
				"Credit yourself out loud; maintenance is invisible until it stops.",
				"Schedule novelty like a chore, then enjoy it.",
			},
			LuckyItems:       []string{"Watering can", "Checklist pad"},
			FamousPeoplePool: []string{"George Washington Carver", "Marge Simpson"},
		},
		{
			TypeKey: "CD", BaseName: "The Examiner", Color: "#34495e",
			Titles:    []string{"Sharp Standard"},
			Summaries: []string{"You hold the line on quality and do not blink. Rigor backed by resolve; your sign-off means something."},
			AdviceList: []string{
				"Soften the delivery, never the standard.",
				"Pick battles by impact, not by error count.",
			},
			LuckyItems:       []string{"Magnifying glass", "Espresso"},
			FamousPeoplePool: []string{"Sherlock Holmes", "Ruth Bader Ginsburg"},
		},
		{
			TypeKey: "CI", BaseName: "The Curator", Color: "#5dade2",
			Titles:    []string{"Refined Taste"},
			Summaries: []string{"You collect the best and present it beautifully. Analysis with a sense of audience; accuracy that people actually enjoy."},
			AdviceList: []string{
				"Perfect taste ships late; good taste ships.",
				"Invite others into the process, not just the reveal.",
			},
			LuckyItems:       []string{"Gallery pass", "Vinyl record"},
			FamousPeoplePool: []string{"Wes Anderson", "Martha Stewart"},
		},
		{
			TypeKey: "CS", BaseName: "The Archivist", Color: "#7fb3d5",
			Titles:    []string{"Methodical Calm"},
			Summaries: []string{"Careful, consistent, quietly indispensable. You remember what everyone else forgot and filed it correctly the first time."},
			AdviceList: []string{
				"Surface your objections before the decision, not after.",
				"Some rules deserve to be rewritten; you are qualified to do it.",
			},
			LuckyItems:       []string{"Label maker", "Library card"},
			FamousPeoplePool: []string{"Marie Kondo", "C-3PO"},
		},
	}
}
