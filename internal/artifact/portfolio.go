package artifact

// portfolioTemplate is the fixed fill-in-the-blanks portfolio document.
const portfolioTemplate = `VA PORTFOLIO TEMPLATE

[YOUR NAME]
Virtual Assistant | AI-Enhanced Productivity Expert

PROFESSIONAL SUMMARY
I am a Virtual Assistant specializing in [top 3 skills].
Using AI tools like ChatGPT and Claude, I deliver work 3x faster.

SKILLS
- Email Management
- Calendar Management
- Meeting Coordination
- AI-Powered Productivity

PORTFOLIO PIECE 1: [TITLE]

CHALLENGE:
[Describe the problem]

SOLUTION:
[What you did]

RESULTS:
- Reduced time by X%
- Improved efficiency
- Client satisfaction

PORTFOLIO PIECE 2: [TITLE]
[Repeat format]

CONTACT
Email: [your email]
Availability: [your hours]`

// Portfolio returns the portfolio template. It does not depend on any
// analysis and is identical on every call.
func Portfolio() string {
	return portfolioTemplate
}
