package draft

import (
	"strings"

	"formalgen/internal/lookup"
)

// PromptBuilder selects the fixed instruction template for a language and
// document kind and appends the topic. Each template constrains the model
// to body text only: no heading, reference, date, signature or addressees.
type PromptBuilder struct{}

const orderInstructionEN = `You are drafting the BODY of an official government Office Order for BISAG-N.

Rules:
- Write one formal paragraph (minimum 2-3 sentences).
- Use official government tone.
- Do not include title, reference, date, From or To.
- No bullet points or numbering.
- Plain text only.`

const orderInstructionHI = `आप BISAG-N के लिए एक आधिकारिक कार्यालय आदेश की मुख्य सामग्री लिख रहे हैं।

नियम:
- कम से कम 2-3 वाक्यों का एक औपचारिक अनुच्छेद लिखें।
- सरकारी भाषा का प्रयोग करें।
- कोई शीर्षक, संदर्भ, दिनांक, प्रेषक या प्राप्तकर्ता न लिखें।
- बुलेट या क्रमांक का प्रयोग न करें।
- केवल सादा पाठ में उत्तर दें।`

const circularInstructionEN = `You are drafting ONLY the BODY content of an official Government Circular for BISAG-N.

IMPORTANT Rules:
- Write ONLY the main body content of the circular.
- Do NOT include any subject line.
- Do NOT include any title or heading.
- Do NOT include reference number.
- Do NOT include signature.
- Do NOT include date.
- Do NOT include From or To sections.
- Write 1-2 formal paragraphs only.
- Official government tone.
- Plain text only.`

const circularInstructionHI = `आप BISAG-N के लिए एक सरकारी परिपत्र (Circular) का केवल मुख्य भाग (BODY) लिख रहे हैं।

महत्वपूर्ण नियम:
- केवल परिपत्र का मुख्य विषय-वस्तु लिखें।
- कोई विषय (Subject) न लिखें।
- कोई शीर्षक न लिखें।
- कोई संदर्भ संख्या न लिखें।
- कोई हस्ताक्षर न लिखें।
- कोई दिनांक न लिखें।
- कोई "प्रेषक" या "प्राप्तकर्ता" न लिखें।
- 1-2 औपचारिक अनुच्छेद लिखें।
- सरकारी भाषा का प्रयोग करें।
- केवल सादा पाठ में उत्तर दें।`

// Build returns the full prompt for one draft request.
func (pb *PromptBuilder) Build(topic string, lang lookup.Language, kind Kind) string {
	var sb strings.Builder
	sb.WriteString(pb.instruction(lang, kind))
	sb.WriteString("\n\nTopic:\n")
	sb.WriteString(topic)
	return sb.String()
}

func (pb *PromptBuilder) instruction(lang lookup.Language, kind Kind) string {
	if kind == KindCircular {
		if lang == lookup.LangHI {
			return circularInstructionHI
		}
		return circularInstructionEN
	}
	if lang == lookup.LangHI {
		return orderInstructionHI
	}
	return orderInstructionEN
}
