package localgen

import "github.com/kidskills/kidskills/internal/question"

// Hand-authored pools. Entries keep the correct option in a fixed slot
// here; Pick shuffles before serving.

var grammarPool = map[string][]bankEntry{
	"punctuation": {
		{
			Text: "Which sentence uses punctuation correctly?",
			Options: []question.Option{
				{ID: "a", Text: "We went to the park we had a picnic."},
				{ID: "b", Text: "We went to the park, we had a picnic."},
				{ID: "c", Text: "We went to the park; we had a picnic.", Correct: true},
				{ID: "d", Text: "We went to the park we had a picnic"},
			},
			Explanation: "A semicolon correctly joins two related independent clauses.",
			Hint:        "Look for the option that correctly separates two complete thoughts.",
		},
		{
			Text: "Which sentence ends with the right punctuation mark?",
			Options: []question.Option{
				{ID: "a", Text: "What time is it."},
				{ID: "b", Text: "What time is it?", Correct: true},
				{ID: "c", Text: "What time is it,"},
				{ID: "d", Text: "What time is it"},
			},
			Explanation: "Questions end with a question mark.",
			Hint:        "The sentence is asking something.",
		},
	},
	"verb-tense": {
		{
			Text: "Which sentence uses the correct verb tense?",
			Options: []question.Option{
				{ID: "a", Text: "Yesterday, I am going to the store."},
				{ID: "b", Text: "Yesterday, I went to the store.", Correct: true},
				{ID: "c", Text: "Yesterday, I will go to the store."},
				{ID: "d", Text: "Yesterday, I go to the store."},
			},
			Explanation: "The past tense 'went' matches an action that happened yesterday.",
			Hint:        "The word 'yesterday' tells you what tense to use.",
		},
		{
			Text: "Which sentence is correct?",
			Options: []question.Option{
				{ID: "a", Text: "She eated her lunch quickly."},
				{ID: "b", Text: "She ated her lunch quickly."},
				{ID: "c", Text: "She ate her lunch quickly.", Correct: true},
				{ID: "d", Text: "She eats her lunch quickly yesterday."},
			},
			Explanation: "'Ate' is the past tense of 'eat'.",
			Hint:        "Some verbs change completely in the past tense.",
		},
	},
	"subject-verb-agreement": {
		{
			Text: "Which sentence shows correct subject-verb agreement?",
			Options: []question.Option{
				{ID: "a", Text: "The team are playing well."},
				{ID: "b", Text: "The team is playing well.", Correct: true},
				{ID: "c", Text: "The team were playing well."},
				{ID: "d", Text: "The team be playing well."},
			},
			Explanation: "The singular verb 'is' goes with the singular collective noun 'team'.",
			Hint:        "Collective nouns like 'team' are usually treated as singular.",
		},
		{
			Text: "Which sentence is correct?",
			Options: []question.Option{
				{ID: "a", Text: "The dogs barks at the mail carrier."},
				{ID: "b", Text: "The dog bark at the mail carrier."},
				{ID: "c", Text: "The dogs bark at the mail carrier.", Correct: true},
				{ID: "d", Text: "The dogs barking at the mail carrier."},
			},
			Explanation: "A plural subject ('dogs') takes the plural verb form 'bark'.",
			Hint:        "Match the verb to how many dogs there are.",
		},
	},
	"pronouns": {
		{
			Text: "Which sentence uses pronouns correctly?",
			Options: []question.Option{
				{ID: "a", Text: "Me and my friend went to the movie."},
				{ID: "b", Text: "My friend and me went to the movie."},
				{ID: "c", Text: "My friend and I went to the movie.", Correct: true},
				{ID: "d", Text: "My friend and myself went to the movie."},
			},
			Explanation: "The subject pronoun 'I' is correct in a compound subject.",
			Hint:        "Which pronoun would you use if you were alone? 'I went to the movie.'",
		},
	},
	"articles": {
		{
			Text: "Which sentence uses articles correctly?",
			Options: []question.Option{
				{ID: "a", Text: "I saw a elephant at the zoo."},
				{ID: "b", Text: "I saw an elephant at the zoo.", Correct: true},
				{ID: "c", Text: "I saw the elephant at a zoo."},
				{ID: "d", Text: "I saw elephant at the zoo."},
			},
			Explanation: "'An' goes before 'elephant' because it begins with a vowel sound.",
			Hint:        "'An' is used before words that begin with vowel sounds.",
		},
	},
	"prepositions": {
		{
			Text: "Which sentence uses prepositions correctly?",
			Options: []question.Option{
				{ID: "a", Text: "The book is on the table.", Correct: true},
				{ID: "b", Text: "The book is at the table."},
				{ID: "c", Text: "The book is by the table."},
				{ID: "d", Text: "The book is in the table."},
			},
			Explanation: "'On' describes something resting on a surface.",
			Hint:        "Think about where the book sits compared to the table.",
		},
	},
	"sentence-structure": {
		{
			Text: "Which is a complete sentence?",
			Options: []question.Option{
				{ID: "a", Text: "Running to the store."},
				{ID: "b", Text: "When we arrived at the party."},
				{ID: "c", Text: "The dog barked loudly.", Correct: true},
				{ID: "d", Text: "Because it was raining."},
			},
			Explanation: "A complete sentence has a subject (the dog) and a verb (barked).",
			Hint:        "A complete sentence needs a subject and a verb.",
		},
	},
	"general": {
		{
			Text: "Which sentence is grammatically correct?",
			Options: []question.Option{
				{ID: "a", Text: "She don't like ice cream."},
				{ID: "b", Text: "She doesn't like ice cream.", Correct: true},
				{ID: "c", Text: "She not like ice cream."},
				{ID: "d", Text: "She do not likes ice cream."},
			},
			Explanation: "Third-person singular subjects take 'doesn't' in the negative form.",
			Hint:        "For he, she, or it, use 'doesn't'.",
		},
		{
			Text: "Which sentence is written correctly?",
			Options: []question.Option{
				{ID: "a", Text: "them books are mine."},
				{ID: "b", Text: "Those books are mine.", Correct: true},
				{ID: "c", Text: "Those books is mine."},
				{ID: "d", Text: "Them books is mine."},
			},
			Explanation: "'Those' points at the books, and the plural subject takes 'are'.",
			Hint:        "Start with the right pointing word, then match the verb.",
		},
	},
}

var vocabularyPool = map[question.Difficulty][]bankEntry{
	question.DifficultyEasy: {
		{
			Text: "Which word means 'very big'?",
			Options: []question.Option{
				{ID: "a", Text: "Tiny"},
				{ID: "b", Text: "Huge", Correct: true},
				{ID: "c", Text: "Small"},
				{ID: "d", Text: "Fast"},
			},
			Explanation: "The word 'huge' means very big or large in size.",
			Hint:        "Think of something that is the opposite of small.",
		},
		{
			Text: "What is the meaning of 'happy'?",
			Options: []question.Option{
				{ID: "a", Text: "Feeling joy", Correct: true},
				{ID: "b", Text: "Feeling sad"},
				{ID: "c", Text: "Feeling tired"},
				{ID: "d", Text: "Feeling angry"},
			},
			Explanation: "Happy means feeling or showing pleasure or contentment.",
			Hint:        "Think of how you feel when something good happens.",
		},
	},
	question.DifficultyMedium: {
		{
			Text: "Which word is a synonym for 'brave'?",
			Options: []question.Option{
				{ID: "a", Text: "Scared"},
				{ID: "b", Text: "Timid"},
				{ID: "c", Text: "Courageous", Correct: true},
				{ID: "d", Text: "Weak"},
			},
			Explanation: "Courageous means brave, able to do something that frightens you.",
			Hint:        "Look for a word that describes someone who isn't afraid.",
		},
		{
			Text: "What does the word 'ancient' mean?",
			Options: []question.Option{
				{ID: "a", Text: "Very new"},
				{ID: "b", Text: "Very old", Correct: true},
				{ID: "c", Text: "Very big"},
				{ID: "d", Text: "Very small"},
			},
			Explanation: "Ancient means belonging to the very distant past.",
			Hint:        "Think about things like dinosaurs or pyramids.",
		},
	},
	question.DifficultyHard: {
		{
			Text: "What is the definition of 'perseverance'?",
			Options: []question.Option{
				{ID: "a", Text: "Giving up easily"},
				{ID: "b", Text: "Being very tall"},
				{ID: "c", Text: "Continuing despite difficulties", Correct: true},
				{ID: "d", Text: "Running very fast"},
			},
			Explanation: "Perseverance means continuing to try despite difficulty or delay.",
			Hint:        "Think about continuing to try even when things are hard.",
		},
		{
			Text: "Which word means 'to make something better'?",
			Options: []question.Option{
				{ID: "a", Text: "Worsen"},
				{ID: "b", Text: "Improve", Correct: true},
				{ID: "c", Text: "Maintain"},
				{ID: "d", Text: "Ignore"},
			},
			Explanation: "Improve means to make or become better.",
			Hint:        "Think of what happens when you practice a skill over time.",
		},
	},
}

var readingPool = map[string][]passageEntry{
	"animals": {
		{
			Passage: "Elephants are the largest land animals on Earth. They have long trunks that they use like hands. With their trunks, elephants can pick up food, spray water, and even greet other elephants. Elephants live in herds led by the oldest female, called the matriarch. They have excellent memories and can remember routes to water sources from many years ago. Baby elephants are called calves and can weigh around 200 pounds at birth!",
			Questions: []bankEntry{
				{
					Text: "What do elephants use their trunks for?",
					Options: []question.Option{
						{ID: "a", Text: "To fly"},
						{ID: "b", Text: "To pick up food and spray water", Correct: true},
						{ID: "c", Text: "To dig underground tunnels"},
						{ID: "d", Text: "To make loud noises"},
					},
					Explanation: "The passage says elephants use their trunks like hands to pick up food, spray water, and greet other elephants.",
					Hint:        "Look at the second sentence of the passage.",
				},
				{
					Text: "Who leads an elephant herd?",
					Options: []question.Option{
						{ID: "a", Text: "The largest male"},
						{ID: "b", Text: "The youngest female"},
						{ID: "c", Text: "The oldest female", Correct: true},
						{ID: "d", Text: "The fastest runner"},
					},
					Explanation: "According to the passage, herds are led by the oldest female, called the matriarch.",
					Hint:        "The leader has a special name mentioned in the passage.",
				},
			},
		},
	},
	"space": {
		{
			Passage: "Our solar system has eight planets that orbit around the Sun. The four inner planets are Mercury, Venus, Earth, and Mars. They are called rocky planets because they have solid surfaces. The four outer planets are Jupiter, Saturn, Uranus, and Neptune. These are called gas giants because they are made mostly of gas. Earth is the only planet we know that has life. It has water, air, and the right temperature for plants and animals to live. Scientists are always looking for other planets that might have life too.",
			Questions: []bankEntry{
				{
					Text: "Why are the four outer planets called gas giants?",
					Options: []question.Option{
						{ID: "a", Text: "Because they are very hot"},
						{ID: "b", Text: "Because they have rings"},
						{ID: "c", Text: "Because they are made mostly of gas", Correct: true},
						{ID: "d", Text: "Because they are far from Earth"},
					},
					Explanation: "The passage explains that the outer planets are called gas giants because they are made mostly of gas.",
					Hint:        "Look at the description of the outer planets.",
				},
				{
					Text: "Which planet is known to have life?",
					Options: []question.Option{
						{ID: "a", Text: "Mars"},
						{ID: "b", Text: "Venus"},
						{ID: "c", Text: "Jupiter"},
						{ID: "d", Text: "Earth", Correct: true},
					},
					Explanation: "Earth is the only planet we know that has life, with water, air, and the right temperature.",
					Hint:        "The passage mentions which planet has the right conditions for life.",
				},
			},
		},
	},
	"adventure": {
		{
			Passage: "Maya was exploring the old forest behind her grandparents' house. She had heard stories about a hidden treasure somewhere deep in the woods. With her backpack full of supplies, she followed a narrow path that twisted between tall trees. Suddenly, she spotted something shiny near a large rock. It was an old key with strange markings! Maya wondered what the key might open. Could it be a treasure chest? Or maybe a secret door? As the sun began to set, Maya decided to return home, but she would come back tomorrow to continue her adventure.",
			Questions: []bankEntry{
				{
					Text: "What did Maya find near the large rock?",
					Options: []question.Option{
						{ID: "a", Text: "A map"},
						{ID: "b", Text: "An old key", Correct: true},
						{ID: "c", Text: "A treasure chest"},
						{ID: "d", Text: "A secret door"},
					},
					Explanation: "Maya spotted something shiny near a large rock, which turned out to be an old key with strange markings.",
					Hint:        "Look for what Maya discovered that was shiny.",
				},
				{
					Text: "Why did Maya decide to go home?",
					Options: []question.Option{
						{ID: "a", Text: "She was scared"},
						{ID: "b", Text: "She found the treasure"},
						{ID: "c", Text: "It started to rain"},
						{ID: "d", Text: "The sun was setting", Correct: true},
					},
					Explanation: "Maya returned home as the sun began to set, planning to continue the next day.",
					Hint:        "The passage mentions a change in the time of day.",
				},
			},
		},
	},
	"general": {
		{
			Passage: "Libraries are amazing places where you can find books on almost any topic. They have fiction books with exciting stories and non-fiction books full of facts and information. Many libraries also have computers, movies, and music that people can borrow. Librarians help visitors find what they're looking for and recommend new books to read. Libraries often have special programs for children, like story time and summer reading clubs. Best of all, most libraries are free to use with a library card!",
			Questions: []bankEntry{
				{
					Text: "What do librarians do according to the passage?",
					Options: []question.Option{
						{ID: "a", Text: "Write books"},
						{ID: "b", Text: "Clean the library"},
						{ID: "c", Text: "Help visitors find books and make recommendations", Correct: true},
						{ID: "d", Text: "Fix computers"},
					},
					Explanation: "Librarians help visitors find what they're looking for and recommend new books.",
					Hint:        "Look at the sentence that mentions librarians specifically.",
				},
				{
					Text: "What does the passage say about the cost of using libraries?",
					Options: []question.Option{
						{ID: "a", Text: "They are expensive"},
						{ID: "b", Text: "They are free with a library card", Correct: true},
						{ID: "c", Text: "They cost money only for children"},
						{ID: "d", Text: "The passage doesn't mention cost"},
					},
					Explanation: "Most libraries are free to use with a library card.",
					Hint:        "Check the last sentence of the passage.",
				},
			},
		},
	},
}

var leadershipPool = []bankEntry{
	{
		Text: "Your friend is being left out of a game at recess. What would be the best thing to do?",
		Options: []question.Option{
			{ID: "a", Text: "Ignore it because it's not your problem."},
			{ID: "b", Text: "Tell the teacher immediately without trying to help."},
			{ID: "c", Text: "Invite your friend to join your own game or activity.", Correct: true},
			{ID: "d", Text: "Tell the other kids they are being mean."},
		},
		Explanation: "Being a good leader means including others and making them feel welcome. Inviting your friend shows kindness and leadership.",
		Hint:        "Think about what would make your friend feel included and valued.",
	},
	{
		Text: "You see someone in your class struggling with a math problem that you know how to solve. What should you do?",
		Options: []question.Option{
			{ID: "a", Text: "Tell them they should study more."},
			{ID: "b", Text: "Offer to explain how to solve the problem.", Correct: true},
			{ID: "c", Text: "Solve it for them without explaining."},
			{ID: "d", Text: "Ignore it because they need to learn on their own."},
		},
		Explanation: "Good leaders help others learn and grow. Explaining the solution helps your classmate build their own skills.",
		Hint:        "What would help them both now and in the future?",
	},
	{
		Text: "Your team is working on a project, but two members keep arguing about how to do it. What would a good leader do?",
		Options: []question.Option{
			{ID: "a", Text: "Pick the idea you like best and tell everyone to do it that way."},
			{ID: "b", Text: "Let them argue until someone gives up."},
			{ID: "c", Text: "Suggest combining ideas from both sides to create a better solution.", Correct: true},
			{ID: "d", Text: "Tell the teacher that your team can't work together."},
		},
		Explanation: "Good leaders look for compromise and include everyone's ideas. Combining perspectives often leads to better solutions.",
		Hint:        "Is there a way to make both people feel their ideas are valued?",
	},
	{
		Text: "You promised to help set up for the class party, but your friends invite you to play outside instead. What should you do?",
		Options: []question.Option{
			{ID: "a", Text: "Go play and hope someone else sets up."},
			{ID: "b", Text: "Keep your promise and help set up, then join your friends.", Correct: true},
			{ID: "c", Text: "Tell the teacher you are sick."},
			{ID: "d", Text: "Ask your friends to wait without telling anyone where you are."},
		},
		Explanation: "Leaders keep their commitments. Following through on a promise builds trust, and you can still join your friends afterward.",
		Hint:        "What did you already agree to do?",
	},
}
