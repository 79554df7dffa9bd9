package server

// uiPagesRevealJS fades cards in once a tenth of the card is visible.
// Each card is unobserved after its reveal, so the observer never
// re-fires for content that already played the animation.
const uiPagesRevealJS = `
function createRevealObserver() {
  if (typeof IntersectionObserver === 'undefined') {
    return {
      observe: function (el) {
        el.classList.add('visible');
      }
    };
  }
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (!entry.isIntersecting) {
        return;
      }
      entry.target.classList.add('visible');
      observer.unobserve(entry.target);
    });
  }, { threshold: 0.1 });
  return observer;
}
`
